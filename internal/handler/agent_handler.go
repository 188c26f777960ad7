package handler

import (
	"net/http"

	"github.com/blues/tfs/internal/agent"
	"github.com/gin-gonic/gin"
)

type AgentHandler struct {
	manager *agent.Manager
}

func NewAgentHandler(manager *agent.Manager) *AgentHandler {
	return &AgentHandler{manager: manager}
}

// CreateAgent 创建代理
func (h *AgentHandler) CreateAgent(c *gin.Context) {
	var req CreateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	a, err := h.manager.CreateAgent(req.Name, req.Personality, req.TokenId)
	if err != nil {
		FailWithError(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "代理创建成功", ToAgentResponse(a))
}

// GetAgents 获取代理列表
func (h *AgentHandler) GetAgents(c *gin.Context) {
	agents := h.manager.GetAgents()
	SuccessResponse(c, http.StatusOK, "", ToAgentResponseList(agents))
}

// GetAgentLogs 获取代理日志
func (h *AgentHandler) GetAgentLogs(c *gin.Context) {
	logs, err := h.manager.GetAgentLogs(c.Param("id"))
	if err != nil {
		FailWithError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", logs)
}

// StopAgent 停止代理
func (h *AgentHandler) StopAgent(c *gin.Context) {
	if err := h.manager.StopAgent(c.Param("id")); err != nil {
		FailWithError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "代理已停止", nil)
}
