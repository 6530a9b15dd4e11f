package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-api-envelope/internal/http/middleware"
	"github.com/tbourn/go-api-envelope/internal/http/respond"
	"github.com/tbourn/go-api-envelope/internal/services"
)

// HeaderIdempotencyReplayed is set on responses that replay an earlier
// transfer instead of executing a new one.
const HeaderIdempotencyReplayed = "Idempotency-Replayed"

// TransferRequest is the JSON payload for a transfer.
type TransferRequest struct {
	From   string `json:"from" binding:"required,uuid" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
	To     string `json:"to" binding:"required,uuid" example:"5e0f3c1a-8d3b-4a8e-9a51-2f7b1c0d9e42"`
	Amount int64  `json:"amount" binding:"required,gt=0" example:"1000"`
}

// CreateTransfer godoc
// @ID          createTransfer
// @Summary     Transfer between accounts
// @Description Moves an amount between two accounts of the current user in one transaction.
// @Description With an Idempotency-Key, a retried request replays the original transfer.
// @Tags        Transfers
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID        header  string  true   "Caller identity"  example(user123)
// @Param       Idempotency-Key  header  string  false  "Key for safe retries (UUID recommended)"
// @Param       body             body    handlers.TransferRequest  true  "Transfer payload"
//
// @Success     200  {object}  result.Envelope{data=domain.Transfer}
// @Header      200  {string}  Idempotency-Replayed  "true when the response replays an earlier transfer"
// @Failure     400  {object}  result.Envelope  "Business rule (B100 funds, B101 amount, B102 same account, B103 currency, B404, B409 key reused) or validation error"
// @Failure     401  {object}  result.Envelope  "Missing identity or not the owner (A002)"
// @Failure     429  {object}  result.Envelope  "Rate limited (P429)"
// @Failure     500  {object}  result.Envelope  "Server error"
// @Router      /transfers [post]
func (h *Handlers) CreateTransfer(c *gin.Context) {
	var req TransferRequest
	if !bindJSON(c, &req) {
		return
	}

	in := services.TransferInput{
		UserID: userID(c),
		FromID: req.From,
		ToID:   req.To,
		Amount: req.Amount,
	}
	if key, ok := middleware.GetIdempotencyKey(c); ok {
		in.IdemScope = c.FullPath()
		in.IdemKey = key
	}

	t, replayed, err := h.transfers.Transfer(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	if replayed {
		c.Header(HeaderIdempotencyReplayed, "true")
	}
	respond.OK(c, t)
}
