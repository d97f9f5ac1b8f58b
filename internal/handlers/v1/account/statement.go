package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/bank-ledger/internal/handlers/apierror"
	"github.com/carson-networks/bank-ledger/internal/ledger"
)

// StatementLine is one ledger entry on a statement.
type StatementLine struct {
	Kind   string `json:"kind" doc:"deposit or withdrawal"`
	Amount string `json:"amount" doc:"Decimal amount"`
}

// StatementResponse is the response body for an account statement.
type StatementResponse struct {
	AccountID int64           `json:"accountID" doc:"Account number"`
	Type      string          `json:"type" doc:"Account type name"`
	Lines     []StatementLine `json:"lines" doc:"Ledger entries in order"`
	Total     string          `json:"total" doc:"Decimal balance"`
	Text      string          `json:"text" doc:"Rendered statement"`
}

// StatementOutput is the Huma output for an account statement.
type StatementOutput struct {
	Body StatementResponse
}

// statementReader is the interface for reading account statements.
type statementReader interface {
	Statement(ctx context.Context, accountID int64) (ledger.Statement, error)
}

// StatementHandler handles GET /v1/account/{accountID}/statement.
type StatementHandler struct {
	AccountService statementReader
}

// NewStatementHandler creates a new StatementHandler.
func NewStatementHandler(svc statementReader) *StatementHandler {
	return &StatementHandler{AccountService: svc}
}

// Register registers the statement endpoint with the Huma API.
func (h *StatementHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "account-statement",
		Method:      http.MethodGet,
		Path:        "/v1/account/{accountID}/statement",
		Summary:     "Account statement",
		Description: "Lists the account ledger with its total.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *StatementHandler) handle(ctx context.Context, input *GetAccountInput) (*StatementOutput, error) {
	s, err := h.AccountService.Statement(ctx, input.AccountID)
	if err != nil {
		return nil, apierror.FromLedger(err, "failed to get statement")
	}

	resp := StatementResponse{
		AccountID: s.AccountID,
		Type:      s.AccountType.String(),
		Lines:     make([]StatementLine, len(s.Lines)),
		Total:     s.Total.String(),
		Text:      s.String(),
	}
	for i, l := range s.Lines {
		resp.Lines[i] = StatementLine{Kind: l.Kind.String(), Amount: l.Amount.String()}
	}

	return &StatementOutput{Body: resp}, nil
}
