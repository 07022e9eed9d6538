package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/WHSBrasil/IS-PAT/internal/config"
	"github.com/WHSBrasil/IS-PAT/internal/handler"
	"github.com/WHSBrasil/IS-PAT/internal/middleware"
	"github.com/WHSBrasil/IS-PAT/internal/repository"
	"github.com/WHSBrasil/IS-PAT/internal/service"
	"github.com/WHSBrasil/IS-PAT/internal/worker"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	classificacaoRepo := repository.NewClassificacaoRepository(db)
	produtoRepo := repository.NewProdutoRepository(db)
	unidadeRepo := repository.NewUnidadeRepository(db)
	tombamentoRepo := repository.NewTombamentoRepository(db)
	alocacaoRepo := repository.NewAlocacaoRepository(db)
	transferenciaRepo := repository.NewTransferenciaRepository(db)
	manutencaoRepo := repository.NewManutencaoRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	cadastroSvc := service.NewCadastroService(classificacaoRepo, produtoRepo, unidadeRepo)
	tombamentoSvc := service.NewTombamentoService(tombamentoRepo, produtoRepo, cfg.NomeMantenedora)
	movimentacaoSvc := service.NewMovimentacaoService(tombamentoRepo, alocacaoRepo, transferenciaRepo, manutencaoRepo, unidadeRepo)
	dashboardSvc := service.NewDashboardService(tombamentoRepo)
	etiquetaSvc := service.NewEtiquetaService(tombamentoRepo, alocacaoRepo, dispatcher, cfg.PublicBaseURL, cfg.NomeMantenedora)

	// ── Handlers ─────────────────────────────────────────────────────────────
	cadastrosH := handler.NewCadastrosHandler(cadastroSvc)
	tombamentosH := handler.NewTombamentosHandler(tombamentoSvc, cfg.UploadDir)
	alocacoesH := handler.NewAlocacoesHandler(movimentacaoSvc, etiquetaSvc, cfg.UploadDir)
	transferenciasH := handler.NewTransferenciasHandler(movimentacaoSvc)
	manutencoesH := handler.NewManutencoesHandler(movimentacaoSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)
	etiquetasH := handler.NewEtiquetasHandler(etiquetaSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))
	r.Static("/uploads", cfg.UploadDir)

	api := r.Group("/api")
	{
		classificacoes := api.Group("/classificacoes")
		{
			classificacoes.POST("", cadastrosH.CriarClassificacao)
			classificacoes.GET("", cadastrosH.ListarClassificacoes)
			classificacoes.GET("/:id", cadastrosH.BuscarClassificacao)
			classificacoes.PUT("/:id", cadastrosH.AtualizarClassificacao)
			classificacoes.DELETE("/:id", cadastrosH.ExcluirClassificacao)
		}

		produtos := api.Group("/produtos")
		{
			produtos.POST("", cadastrosH.CriarProduto)
			produtos.GET("", cadastrosH.ListarProdutos)
			produtos.PUT("/:id", cadastrosH.AtualizarProduto)
			produtos.DELETE("/:id", cadastrosH.ExcluirProduto)
		}

		unidades := api.Group("/unidades-saude")
		{
			unidades.POST("", cadastrosH.CriarUnidade)
			unidades.GET("", cadastrosH.ListarUnidades)
			unidades.PUT("/:id", cadastrosH.AtualizarUnidade)
			unidades.DELETE("/:id", cadastrosH.ExcluirUnidade)
		}

		setores := api.Group("/setores")
		{
			setores.POST("", cadastrosH.CriarSetor)
			setores.GET("", cadastrosH.ListarSetores)
			setores.PUT("/:id", cadastrosH.AtualizarSetor)
			setores.DELETE("/:id", cadastrosH.ExcluirSetor)
		}

		tombamentos := api.Group("/tombamentos")
		{
			tombamentos.POST("", tombamentosH.Criar)
			tombamentos.GET("", tombamentosH.Listar)
			tombamentos.GET("/:id", tombamentosH.Buscar)
			tombamentos.PUT("/:id", tombamentosH.Atualizar)
			tombamentos.DELETE("/:id", tombamentosH.Excluir)
			tombamentos.POST("/:id/etiqueta", etiquetasH.Gerar)
			tombamentos.GET("/:id/qrcode", etiquetasH.QRCode)
		}

		// Public QR landing — what a person scanning the label sees
		api.GET("/tomb/publico/:id", tombamentosH.Publico)

		alocacoes := api.Group("/alocacoes")
		{
			alocacoes.POST("", alocacoesH.Alocar)
			alocacoes.GET("", alocacoesH.Listar)
			alocacoes.GET("/:id", alocacoesH.Buscar)
			alocacoes.PUT("/:id", alocacoesH.Atualizar)
			alocacoes.DELETE("/:id", alocacoesH.Desalocar)
			alocacoes.GET("/:id/termo", alocacoesH.Termo)
		}

		transferencias := api.Group("/transferencias")
		{
			transferencias.POST("", transferenciasH.Registrar)
			transferencias.GET("", transferenciasH.Listar)
		}

		manutencoes := api.Group("/manutencoes")
		{
			manutencoes.POST("", manutencoesH.Enviar)
			manutencoes.GET("", manutencoesH.Listar)
			manutencoes.PUT("/:id/retorno", manutencoesH.RegistrarRetorno)
			manutencoes.DELETE("/:id", manutencoesH.Excluir)
		}

		api.GET("/dashboard/stats", dashboardH.Stats)
	}

	return r
}
