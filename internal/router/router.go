package router

import (
	"github.com/blues/tfs/internal/agent"
	"github.com/blues/tfs/internal/config"
	"github.com/blues/tfs/internal/handler"
	"github.com/blues/tfs/internal/store"
	"github.com/gin-gonic/gin"
)

func Setup(st *store.Store, agentManager *agent.Manager, cfg *config.Config) *gin.Engine {
	r := gin.New()

	// 中间件
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "token-funding-service",
		})
	})

	// API版本组
	v1 := r.Group("/api/v1")
	{
		// 代币相关路由
		tokenHandler := handler.NewTokenHandler(st)
		pledgeHandler := handler.NewPledgeHandler(st)
		tokens := v1.Group("/tokens")
		{
			tokens.POST("", tokenHandler.CreateToken)
			tokens.GET("", tokenHandler.GetTokens)
			tokens.GET("/trending", tokenHandler.GetTrending)
			tokens.GET("/stats", tokenHandler.GetAllTokenStats)
			tokens.GET("/:id", tokenHandler.GetToken)
			tokens.POST("/:id/upvote", tokenHandler.Upvote)
			tokens.POST("/:id/commit", pledgeHandler.Commit)
			tokens.POST("/:id/refund", pledgeHandler.Refund)
			tokens.POST("/:id/comments", tokenHandler.AddComment)
			tokens.GET("/:id/comments", tokenHandler.GetComments)
		}

		// 代理相关路由
		agentHandler := handler.NewAgentHandler(agentManager)
		agents := v1.Group("/agents")
		{
			agents.POST("", agentHandler.CreateAgent)
			agents.GET("", agentHandler.GetAgents)
			agents.GET("/:id/logs", agentHandler.GetAgentLogs)
			agents.POST("/:id/stop", agentHandler.StopAgent)
		}
	}

	return r
}

// CORS中间件
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
