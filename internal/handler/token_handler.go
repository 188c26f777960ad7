package handler

import (
	"net/http"
	"strconv"

	"github.com/blues/tfs/internal/logic"
	"github.com/blues/tfs/internal/model"
	"github.com/blues/tfs/internal/store"
	"github.com/gin-gonic/gin"
)

type TokenHandler struct {
	tokenLogic *logic.TokenLogic
}

func NewTokenHandler(st *store.Store) *TokenHandler {
	return &TokenHandler{
		tokenLogic: logic.NewTokenLogic(st),
	}
}

// CreateToken 创建代币
func (h *TokenHandler) CreateToken(c *gin.Context) {
	var req CreateTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	token := model.Token{
		Title:        req.Title,
		Ticker:       req.Ticker,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		Website:      req.Website,
		Twitter:      req.Twitter,
		Telegram:     req.Telegram,
		TargetAmount: req.TargetAmount,
	}

	// 调用logic层创建代币
	if err := h.tokenLogic.CreateToken(&token); err != nil {
		FailWithError(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "代币创建成功", ToTokenResponse(&token))
}

// GetTokens 获取代币列表
func (h *TokenHandler) GetTokens(c *gin.Context) {
	tokens := h.tokenLogic.GetTokens()
	SuccessResponse(c, http.StatusOK, "", ToTokenResponseList(tokens))
}

// GetToken 获取代币详情
func (h *TokenHandler) GetToken(c *gin.Context) {
	token, err := h.tokenLogic.GetToken(c.Param("id"))
	if err != nil {
		FailWithError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", ToTokenDetailResponse(token))
}

// Upvote 点赞代币
func (h *TokenHandler) Upvote(c *gin.Context) {
	var req WalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	token, err := h.tokenLogic.Upvote(c.Param("id"), req.WalletAddress)
	if err != nil {
		FailWithError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "点赞成功", ToTokenResponse(token))
}

// AddComment 添加评论
func (h *TokenHandler) AddComment(c *gin.Context) {
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	comment, err := h.tokenLogic.AddComment(c.Param("id"), req.Author, req.Text)
	if err != nil {
		FailWithError(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "评论成功", comment)
}

// GetComments 获取评论列表
func (h *TokenHandler) GetComments(c *gin.Context) {
	comments, err := h.tokenLogic.GetComments(c.Param("id"))
	if err != nil {
		FailWithError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", comments)
}

// GetTrending 获取热门代币榜
func (h *TokenHandler) GetTrending(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的limit参数")
		return
	}

	tokens := h.tokenLogic.GetTrending(limit)
	SuccessResponse(c, http.StatusOK, "", ToTokenResponseList(tokens))
}

// GetAllTokenStats 获取全局统计信息
func (h *TokenHandler) GetAllTokenStats(c *gin.Context) {
	stats := h.tokenLogic.GetAllTokenStats()
	SuccessResponse(c, http.StatusOK, "", stats)
}
