// Account HTTP handlers.
//
// This file exposes REST endpoints for wallet accounts:
//   - POST /accounts                (open)
//   - GET  /accounts                (list, paginated)
//   - GET  /accounts/{id}           (fetch)
//   - POST /accounts/{id}/deposits  (credit)
//
// Handlers are transport-thin: they bind input, call application services,
// and report every result as an envelope through the respond package.
package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tbourn/go-api-envelope/internal/domain"
	"github.com/tbourn/go-api-envelope/internal/http/middleware"
	"github.com/tbourn/go-api-envelope/internal/http/respond"
	"github.com/tbourn/go-api-envelope/internal/services"
	"github.com/tbourn/go-api-envelope/internal/utils"
)

//
// Service contracts (context-aware)
//

// AccountService defines account operations consumed by HTTP handlers.
//
// Implementations must honor the provided context and return the sentinel
// errors of the services package for expected failures.
type AccountService interface {
	Create(ctx context.Context, userID, currency, label string) (*domain.Account, error)
	Get(ctx context.Context, userID, id string) (*domain.Account, error)
	ListPage(ctx context.Context, userID string, page, pageSize int) ([]domain.Account, int64, error)
	Deposit(ctx context.Context, userID, id string, amount int64) (*domain.Account, error)
}

// TransferService moves money between accounts of one user.
type TransferService interface {
	Transfer(ctx context.Context, in services.TransferInput) (*domain.Transfer, bool, error)
}

//
// Handler wiring
//

// Handlers groups the wallet endpoints.
type Handlers struct {
	accounts  AccountService
	transfers TransferService
}

// New constructs Handlers bound to the given services.
func New(accounts AccountService, transfers TransferService) *Handlers {
	setupValidation()
	return &Handlers{accounts: accounts, transfers: transfers}
}

// userID returns the identity set by middleware.Authenticate. Routes are
// always mounted behind it, so an empty id only happens in misconfigured
// tests.
func userID(c *gin.Context) string {
	id, _ := middleware.UserID(c)
	return id
}

// accountID reads and checks the :id path parameter. It writes a V006
// validation outcome and returns false when the id is not a UUID.
func accountID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		respond.ValidationFields(c, fieldError("id", "uuid", "id must be a valid UUID"))
		return "", false
	}
	return id, true
}

//
// DTOs
//

// CreateAccountRequest is the JSON payload for opening an account.
type CreateAccountRequest struct {
	// Currency is an upper-case ISO 4217 code.
	Currency string `json:"currency" binding:"required,len=3,iso4217" example:"EUR"`
	// Label optionally names the account.
	Label string `json:"label" binding:"max=64" example:"Savings"`
}

// DepositRequest is the JSON payload for crediting an account.
type DepositRequest struct {
	// Amount in minor units.
	Amount int64 `json:"amount" binding:"required,gt=0" example:"2500"`
}

// ListAccountsResponse wraps a page of accounts and pagination information.
type ListAccountsResponse struct {
	Accounts   []domain.Account `json:"accounts"`
	Pagination utils.Pagination `json:"pagination"`
}

//
// Handlers
//

// CreateAccount godoc
// @ID          createAccount
// @Summary     Open an account
// @Description Opens an empty account in the given currency for the current user.
// @Tags        Accounts
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID  header  string  true  "Caller identity"  example(user123)
// @Param       body       body    handlers.CreateAccountRequest  true  "Account payload"
//
// @Success     200  {object}  result.Envelope{data=domain.Account}
// @Failure     400  {object}  result.Envelope  "Validation error"
// @Failure     401  {object}  result.Envelope  "Missing identity"
// @Failure     500  {object}  result.Envelope  "Server error"
// @Router      /accounts [post]
func (h *Handlers) CreateAccount(c *gin.Context) {
	var req CreateAccountRequest
	if !bindJSON(c, &req) {
		return
	}

	acc, err := h.accounts.Create(c.Request.Context(), userID(c), req.Currency, req.Label)
	if err != nil {
		fail(c, err)
		return
	}
	respond.OK(c, acc)
}

// ListAccounts godoc
// @ID          listAccounts
// @Summary     List accounts (paginated)
// @Description Returns a page of the current user's accounts, newest first.
// @Tags        Accounts
// @Produce     json
//
// @Param       X-User-ID  header  string  true   "Caller identity"  example(user123)
// @Param       page       query   int     false  "Page number"      minimum(1) default(1)
// @Param       page_size  query   int     false  "Items per page"   minimum(1) maximum(100) default(20)
//
// @Success     200  {object}  result.Envelope{data=handlers.ListAccountsResponse}
// @Failure     401  {object}  result.Envelope  "Missing identity"
// @Failure     500  {object}  result.Envelope  "Server error"
// @Router      /accounts [get]
func (h *Handlers) ListAccounts(c *gin.Context) {
	page, pageSize := utils.ClampPage(c.Query("page"), c.Query("page_size"))

	items, total, err := h.accounts.ListPage(c.Request.Context(), userID(c), page, pageSize)
	if err != nil {
		fail(c, err)
		return
	}
	respond.OK(c, ListAccountsResponse{
		Accounts:   items,
		Pagination: utils.Paginate(page, pageSize, total),
	})
}

// GetAccount godoc
// @ID          getAccount
// @Summary     Fetch an account
// @Tags        Accounts
// @Produce     json
//
// @Param       X-User-ID  header  string  true  "Caller identity"  example(user123)
// @Param       id         path    string  true  "Account ID (UUID)"  format(uuid)
//
// @Success     200  {object}  result.Envelope{data=domain.Account}
// @Failure     400  {object}  result.Envelope  "Account not found (B404) or invalid id"
// @Failure     401  {object}  result.Envelope  "Missing identity or not the owner (A002)"
// @Failure     500  {object}  result.Envelope  "Server error"
// @Router      /accounts/{id} [get]
func (h *Handlers) GetAccount(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		return
	}

	acc, err := h.accounts.Get(c.Request.Context(), userID(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	respond.OK(c, acc)
}

// Deposit godoc
// @ID          deposit
// @Summary     Deposit into an account
// @Description Credits the account and returns it with the new balance.
// @Tags        Accounts
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID  header  string  true  "Caller identity"  example(user123)
// @Param       id         path    string  true  "Account ID (UUID)"  format(uuid)
// @Param       body       body    handlers.DepositRequest  true  "Deposit payload"
//
// @Success     200  {object}  result.Envelope{data=domain.Account}
// @Failure     400  {object}  result.Envelope  "Validation error, amount over limit (B101) or account not found (B404)"
// @Failure     401  {object}  result.Envelope  "Missing identity or not the owner (A002)"
// @Failure     500  {object}  result.Envelope  "Server error"
// @Router      /accounts/{id}/deposits [post]
func (h *Handlers) Deposit(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		return
	}
	var req DepositRequest
	if !bindJSON(c, &req) {
		return
	}

	acc, err := h.accounts.Deposit(c.Request.Context(), userID(c), id, req.Amount)
	if err != nil {
		fail(c, err)
		return
	}
	respond.OK(c, acc)
}
