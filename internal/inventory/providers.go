// Package inventory assembles the service: repositories with tracing, the audit recorder, the
// background notifier, every CQRS handler, and the HTTP delivery handlers that expose them.
package inventory

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	aloghttp "github.com/tair/inventory-tracker/internal/activitylog/delivery/http"
	alog "github.com/tair/inventory-tracker/internal/activitylog/domain"
	alogrepo "github.com/tair/inventory-tracker/internal/activitylog/repository"
	alogusecase "github.com/tair/inventory-tracker/internal/activitylog/usecase"
	alogquery "github.com/tair/inventory-tracker/internal/activitylog/usecase/query"
	categoryhttp "github.com/tair/inventory-tracker/internal/category/delivery/http"
	cdomain "github.com/tair/inventory-tracker/internal/category/domain"
	crepo "github.com/tair/inventory-tracker/internal/category/repository"
	ccommand "github.com/tair/inventory-tracker/internal/category/usecase/command"
	cquery "github.com/tair/inventory-tracker/internal/category/usecase/query"
	"github.com/tair/inventory-tracker/internal/notify"
	producthttp "github.com/tair/inventory-tracker/internal/product/delivery/http"
	pdomain "github.com/tair/inventory-tracker/internal/product/domain"
	prepo "github.com/tair/inventory-tracker/internal/product/repository"
	pcommand "github.com/tair/inventory-tracker/internal/product/usecase/command"
	pquery "github.com/tair/inventory-tracker/internal/product/usecase/query"
	"github.com/tair/inventory-tracker/internal/report/cache"
	reporthttp "github.com/tair/inventory-tracker/internal/report/delivery/http"
	"github.com/tair/inventory-tracker/internal/report/usecase"
	"github.com/tair/inventory-tracker/pkg/metrics"
	"github.com/tair/inventory-tracker/pkg/worker"
)

// Handlers is everything the process entrypoints need from the object graph
type Handlers struct {
	Products     *producthttp.ProductHandler
	Categories   *categoryhttp.CategoryHandler
	ActivityLogs *aloghttp.ActivityLogHandler
	Reports      *reporthttp.ReportHandler

	// Restock also serves restock requests consumed from the broker
	Restock *pcommand.RestockProductHandler

	// The seeder writes through the same command handlers as the API
	ProductCommands   *producthttp.CommandHandlers
	CategoryCommands  *CategoryCommands
	ProductRepository pdomain.ProductRepository
}

// CategoryCommands groups the category write side
type CategoryCommands struct {
	Create *ccommand.CreateCategoryHandler
	Update *ccommand.UpdateCategoryHandler
	Delete *ccommand.DeleteCategoryHandler
}

// Repositories

func ProvideProductRepository(db *gorm.DB) pdomain.ProductRepository {
	return prepo.NewProductRepositoryWithTracing(prepo.NewGormProductRepository(db))
}

func ProvideCategoryRepository(db *gorm.DB) cdomain.CategoryRepository {
	return crepo.NewCategoryRepositoryWithTracing(crepo.NewGormCategoryRepository(db))
}

func ProvideActivityLogRepository(db *gorm.DB) alog.ActivityLogRepository {
	return alogrepo.NewActivityLogRepositoryWithTracing(alogrepo.NewGormActivityLogRepository(db))
}

// Cross-cutting collaborators

func ProvideRecorder(repo alog.ActivityLogRepository) alog.Recorder {
	return alogusecase.NewRecorder(repo)
}

// ProvideNotifier takes the publisher as an interface so a disabled broker stays a true nil
func ProvideNotifier(pool *worker.Pool, publisher notify.EventPublisher, reportCache *cache.RedisCache) pcommand.StockNotifier {
	return notify.NewNotifier(pool, publisher, reportCache)
}

func ProvideProductDependencies(
	repo pdomain.ProductRepository,
	recorder alog.Recorder,
	notifier pcommand.StockNotifier,
) pcommand.Dependencies {
	return pcommand.Dependencies{Repo: repo, Recorder: recorder, Notifier: notifier}
}

func ProvideReconciler(repo pdomain.ProductRepository, pool *worker.Pool, m *metrics.Inventory) *pquery.Reconciler {
	return pquery.NewReconciler(repo, pool, m)
}

func ProvideReportCache(reportCache *cache.RedisCache) usecase.ReportCache {
	return reportCache
}

// Grouped handlers

func ProvideProductCommands(deps pcommand.Dependencies, restock *pcommand.RestockProductHandler) *producthttp.CommandHandlers {
	return &producthttp.CommandHandlers{
		Create:  pcommand.NewCreateProductHandler(deps),
		Update:  pcommand.NewUpdateProductHandler(deps),
		Delete:  pcommand.NewDeleteProductHandler(deps),
		Restock: restock,
	}
}

func ProvideProductQueries(repo pdomain.ProductRepository, reconciler *pquery.Reconciler) *producthttp.QueryHandlers {
	return &producthttp.QueryHandlers{
		List:     pquery.NewListProductsHandler(repo, reconciler),
		Get:      pquery.NewGetProductHandler(repo, reconciler),
		Search:   pquery.NewSearchProductsHandler(repo, reconciler),
		LowStock: pquery.NewLowStockHandler(repo, reconciler),
	}
}

func ProvideCategoryCommands(repo cdomain.CategoryRepository, recorder alog.Recorder) *CategoryCommands {
	return &CategoryCommands{
		Create: ccommand.NewCreateCategoryHandler(repo, recorder),
		Update: ccommand.NewUpdateCategoryHandler(repo, recorder),
		Delete: ccommand.NewDeleteCategoryHandler(repo, recorder),
	}
}

func ProvideCategoryHandler(
	commands *CategoryCommands,
	repo cdomain.CategoryRepository,
	m *metrics.HTTP,
) *categoryhttp.CategoryHandler {
	return categoryhttp.NewCategoryHandler(
		commands.Create,
		commands.Update,
		commands.Delete,
		cquery.NewListCategoriesHandler(repo),
		cquery.NewGetCategoryHandler(repo),
		m,
	)
}

func ProvideActivityLogHandler(repo alog.ActivityLogRepository, m *metrics.HTTP) *aloghttp.ActivityLogHandler {
	return aloghttp.NewActivityLogHandler(
		alogquery.NewListActivityLogsHandler(repo),
		alogquery.NewEntityHistoryHandler(repo),
		m,
	)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideProductRepository,
	ProvideCategoryRepository,
	ProvideActivityLogRepository,
)

var CollaboratorSet = wire.NewSet(
	ProvideRecorder,
	ProvideNotifier,
	ProvideProductDependencies,
	ProvideReconciler,
	ProvideReportCache,
)

var HandlerSet = wire.NewSet(
	pcommand.NewRestockProductHandler,
	ProvideProductCommands,
	ProvideProductQueries,
	producthttp.NewProductHandler,
	ProvideCategoryCommands,
	ProvideCategoryHandler,
	ProvideActivityLogHandler,
	usecase.NewGenerateReportHandler,
	reporthttp.NewReportHandler,
	wire.Struct(new(Handlers), "*"),
)

var AllSet = wire.NewSet(
	RepositorySet,
	CollaboratorSet,
	HandlerSet,
)
