package webapi

// Status codes and messages carried in the success envelope.
const (
	StatusCreated  = "201"
	MessageCreated = "Account created successfully"

	StatusOK  = "200"
	MessageOK = "Request processed successfully"

	StatusExpectationFailed = "417"
	MessageUpdateFailed     = "Update operation failed. Please try again or contact the Dev team"
	MessageDeleteFailed     = "Delete operation failed. Please try again or contact the Dev team"
)

// SuccessResponse is the status envelope returned by the mutating endpoints.
type SuccessResponse struct {
	StatusCode string `json:"statusCode"`
	StatusMsg  string `json:"statusMsg"`
}

// CustomerRequest is the request body for creating an account: the candidate
// customer attributes. No account fields; those are generated server-side.
type CustomerRequest struct {
	Name         string `json:"name" validate:"required,min=5,max=30"`
	Email        string `json:"email" validate:"required,email"`
	MobileNumber string `json:"mobileNumber" validate:"omitempty,len=10,numeric"`
}

// AccountRequest is the account portion of an update request. The account
// number identifies the record and must be a 10-digit value.
type AccountRequest struct {
	AccountNumber int64  `json:"accountNumber" validate:"required,min=1000000000,max=9999999999"`
	AccountType   string `json:"accountType" validate:"required"`
	BranchAddress string `json:"branchAddress" validate:"required"`
}

// CustomerAccountRequest is the request body for updating both sides of the
// aggregate.
type CustomerAccountRequest struct {
	Name         string         `json:"name" validate:"required,min=5,max=30"`
	Email        string         `json:"email" validate:"required,email"`
	MobileNumber string         `json:"mobileNumber" validate:"omitempty,len=10,numeric"`
	Account      AccountRequest `json:"account" validate:"required"`
}

// ContactInfoResponse is the payload of the contact-info endpoint.
type ContactInfoResponse struct {
	Message       string   `json:"message"`
	ContactName   string   `json:"contactName"`
	ContactEmail  string   `json:"contactEmail"`
	OnCallSupport []string `json:"onCallSupport"`
}
