//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"contentshop/internal/config"
	"contentshop/internal/content"
	"contentshop/internal/dbmongo"
	"contentshop/internal/files"
	"contentshop/internal/recommend"
	"contentshop/internal/shop"
	"contentshop/internal/user"
)

// InitializeApplication assembles the whole service graph. The real body is
// generated into wire_gen.go.
func InitializeApplication(cfg *config.Config) (*Application, error) {
	wire.Build(
		ProvideLogger,
		ProvideDB,
		ProvideMongo,
		ProvideBlobStore,
		ProvideTokenManager,
		ProvideChatClient,
		ProvideRelevanceAnalyzer,

		user.NewUserRepository,
		user.NewUserService,
		user.NewHandler,

		recommend.NewContentSource,
		recommend.NewInteractionRepo,
		recommend.NewAudienceClassifier,
		recommend.NewRecommendService,
		recommend.NewHandler,

		files.NewFileRepo,
		files.NewFileService,
		files.NewHandler,
		wire.Bind(new(files.Blobs), new(*dbmongo.BlobStore)),
		wire.Bind(new(files.Tracker), new(recommend.RecommendService)),

		content.NewContentRepo,
		content.NewStoryRepo,
		content.NewContentService,
		content.NewHandler,
		wire.Bind(new(content.Tracker), new(recommend.RecommendService)),
		wire.Bind(new(content.Classifier), new(recommend.RecommendService)),
		wire.Bind(new(content.FileStore), new(files.FileService)),

		shop.NewProductRepo,
		shop.NewCartRepo,
		shop.NewOrderRepo,
		shop.NewWishlistRepo,
		shop.NewReviewRepo,
		shop.NewCouponRepo,
		shop.NewStripeProvider,
		shop.NewShopService,
		shop.NewCheckoutService,
		shop.NewProductRecommender,
		shop.NewHandler,

		wire.Struct(new(Application), "*"),
	)
	return &Application{}, nil
}
