//go:build wireinject

package service

import (
	"SketchShare/dao"
	"SketchShare/dao/cache"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(AuthService), "*"),
	wire.Bind(new(IAuthService), new(*AuthService)),

	wire.Struct(new(FeedService), "*"),
	wire.Bind(new(IFeedService), new(*FeedService)),

	wire.Struct(new(LikeService), "*"),
	wire.Bind(new(ILikeService), new(*LikeService)),

	wire.Struct(new(PostService), "*"),
	wire.Bind(new(IPostService), new(*PostService)),

	wire.Struct(new(ReportService), "*"),
	wire.Bind(new(IReportService), new(*ReportService)),

	wire.Bind(new(UserStore), new(*dao.UserDAO)),
	wire.Bind(new(PostStore), new(*dao.PostDAO)),
	wire.Bind(new(LikeStore), new(*dao.LikeDAO)),
	wire.Bind(new(ReportStore), new(*dao.ReportDAO)),
	wire.Bind(new(ImageCache), new(*cache.PostImageCache)),
)
