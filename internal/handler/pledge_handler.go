package handler

import (
	"net/http"

	"github.com/blues/tfs/internal/logic"
	"github.com/blues/tfs/internal/store"
	"github.com/gin-gonic/gin"
)

type PledgeHandler struct {
	pledgeLogic *logic.PledgeLogic
}

func NewPledgeHandler(st *store.Store) *PledgeHandler {
	return &PledgeHandler{
		pledgeLogic: logic.NewPledgeLogic(st),
	}
}

// Commit 认购代币
func (h *PledgeHandler) Commit(c *gin.Context) {
	var req CommitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	token, err := h.pledgeLogic.Commit(c.Param("id"), req.WalletAddress, req.Amount)
	if err != nil {
		FailWithError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "认购成功", ToTokenResponse(token))
}

// Refund 退回认购
func (h *PledgeHandler) Refund(c *gin.Context) {
	var req WalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	token, refunded, fee, err := h.pledgeLogic.Refund(c.Param("id"), req.WalletAddress)
	if err != nil {
		FailWithError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "退款成功", RefundResponse{
		Token:          ToTokenResponse(token),
		RefundedAmount: refunded,
		Fee:            fee,
	})
}
