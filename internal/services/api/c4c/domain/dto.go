package domain

// TicketRequest is the body shared by every ticket endpoint
// tenantUrl, username and password may be omitted when the server has defaults
type TicketRequest struct {
	TenantURL string `json:"tenantUrl" validate:"omitempty,max=2048,no_ctl" example:"https://my000000.crm.ondemand.com"`
	TicketID  string `json:"ticketId"  validate:"omitempty,max=128,no_ctl"  example:"TCK-1"`
	Username  string `json:"username"  validate:"omitempty,max=256,no_ctl"  example:"integration.user"`
	Password  string `json:"password"  validate:"omitempty,max=1024"         example:"secret"`
}

// Query maps the body to the service query
func (r TicketRequest) Query() TicketQuery {
	return TicketQuery{TenantURL: r.TenantURL, TicketID: r.TicketID, Username: r.Username, Password: r.Password}
}

// EmailNotesRequest adds the optional e-mail activity to expand
type EmailNotesRequest struct {
	TicketRequest
	EmailActivityID string `json:"emailActivityId" validate:"omitempty,max=128,no_ctl" example:"act-1"`
}

// Query maps the body to the service query
func (r EmailNotesRequest) Query() EmailNotesQuery {
	return EmailNotesQuery{TicketQuery: r.TicketRequest.Query(), EmailActivityID: r.EmailActivityID}
}

// HealthResponse is the module liveness payload
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
