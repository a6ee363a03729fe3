package client

import (
	"github.com/fivetwenty-io/teamwork/internal/http"
	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
)

// NewBilling creates the billing resource, covering invoices and expenses.
func NewBilling(httpClient *http.Client) *Resource {
	return NewResource("billing", httpClient,
		Operation{Name: "allInvoices", Method: methodGet, Path: "invoices.json", Key: "invoices"},
		Operation{
			Name:   "allInvoicesForProject",
			Method: methodGet,
			Path:   "projects/{projectId}/invoices.json",
			IDs:    []IDParam{pathID("projectId", "You must specify a valid project ID when getting an invoice.")},
			Key:    "invoices",
		},
		Operation{
			Name:   "getInvoice",
			Method: methodGet,
			Path:   "invoices/{invoiceId}.json",
			IDs:    []IDParam{pathID("invoiceId", "You must specify a valid invoice ID when getting an invoice by ID.")},
			Key:    "invoice",
		},
		Operation{
			Name:   "createInvoice",
			Method: methodPost,
			Path:   "invoices.json",
			Rules: []teamwork.ValidationRule{
				requiredField("project-id", "`project-id` is a required field when creating new invoice."),
				requiredField("display-date", "`display-date` is a required field when creating new invoice."),
				requiredField("number", "`number` is a required field when creating new invoice."),
			},
			Wrap: "invoice",
		},
		Operation{
			Name:   "updateInvoice",
			Method: methodPut,
			Path:   "invoices/{invoiceId}.json",
			IDs:    []IDParam{pathID("invoiceId", "You must specify a valid invoice ID when updating an invoice.")},
			Wrap:   "invoice",
		},
		Operation{
			Name:   "deleteInvoice",
			Method: methodDelete,
			Path:   "invoices/{invoiceId}.json",
			IDs:    []IDParam{pathID("invoiceId", "You must specify a valid invoice ID when deleting an invoice.")},
		},
		Operation{
			Name:   "markInvoiceComplete",
			Method: methodPut,
			Path:   "invoices/{invoiceId}/complete.json",
			IDs:    []IDParam{pathID("invoiceId", "You must specify a valid invoice ID when marking invoice complete.")},
		},
		Operation{
			Name:   "markInvoiceUncomplete",
			Method: methodPut,
			Path:   "invoices/{invoiceId}/uncomplete.json",
			IDs:    []IDParam{pathID("invoiceId", "You must specify a valid invoice ID when marking invoice uncomplete.")},
		},
		Operation{Name: "getCurrencyCodes", Method: methodGet, Path: "currencycodes.json", Key: "currency-codes"},
		Operation{Name: "allExpenses", Method: methodGet, Path: "expenses.json", Key: "expenses"},
		Operation{
			Name:   "allExpensesForProject",
			Method: methodGet,
			Path:   "projects/{projectId}/expenses.json",
			IDs:    []IDParam{pathID("projectId", "You must specify a valid project ID when getting getting expenses by project.")},
			Key:    "expenses",
		},
		Operation{
			Name:   "getExpense",
			Method: methodGet,
			Path:   "expenses/{expenseId}.json",
			IDs:    []IDParam{pathID("expenseId", "You must specify a valid expense ID when getting an expense.")},
			Key:    "expense",
		},
		Operation{
			Name:   "createExpense",
			Method: methodPost,
			Path:   "expenses.json",
			Rules: []teamwork.ValidationRule{
				requiredField("project-id", "`project-id` is a required field when creating new expense."),
				requiredField("date", "`date` is a required field when creating new expense."),
				requiredField("name", "`name` is a required field when creating new expense."),
				requiredField("cost", "`cost` is a required field when creating new expense."),
			},
			Wrap: "expense",
		},
		Operation{
			Name:   "updateExpense",
			Method: methodPut,
			Path:   "expenses/{expenseId}.json",
			IDs:    []IDParam{pathID("expenseId", "You must specify a valid expense ID when updating an expense.")},
			Wrap:   "expense",
		},
		Operation{
			Name:   "deleteExpense",
			Method: methodDelete,
			Path:   "expenses/{expenseId}.json",
			IDs:    []IDParam{pathID("expenseId", "You must specify a valid expense ID when deleting an expense.")},
		},
	)
}
