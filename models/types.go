package models

// Public message constants
const (
	DefaultMessage  = "Enter here the text you want to show on the public page."
	FallbackMessage = "No message available."
)

// Unassigned labels a drawn number with no traceable registrant
const Unassigned = "Unassigned"

// TimestampLayout is the DD/MM/YYYY HH:MM layout used for registration times
const TimestampLayout = "02/01/2006 15:04"

// Request types

type RegisterRequest struct {
	Name    string `json:"name"`
	Numbers string `json:"numbers"`
}

type LoginRequest struct {
	Password string `json:"password"`
}

type DrawRequest struct {
	Quantity int `json:"quantity"`
}

type SetMessageRequest struct {
	Text string `json:"text"`
}

// Response types

type RegisterResponse struct {
	OK           bool                `json:"ok"`
	Message      string              `json:"message"`
	Registration *RegistrationOutput `json:"registration,omitempty"`
	Taken        []int               `json:"taken,omitempty"`
}

// RegistrationOutput is a registration as shown to callers, numbers comma-joined
type RegistrationOutput struct {
	Timestamp string `json:"timestamp"`
	Name      string `json:"name"`
	Numbers   string `json:"numbers"`
}

type LoginResponse struct {
	AdminKey string `json:"admin_key"`
}

type DrawResponse struct {
	OK           bool        `json:"ok"`
	Message      string      `json:"message"`
	DrawnNumbers string      `json:"drawn_numbers,omitempty"`
	ResultsTable []DrawEntry `json:"results_table,omitempty"`
	PoolSize     int         `json:"pool_size,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type StatusResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// Domain types

type Registration struct {
	ID        int64  `json:"id"`
	Timestamp string `json:"timestamp"`
	Name      string `json:"name"`
	Numbers   []int  `json:"numbers"`
}

type DrawEntry struct {
	Number int    `json:"number"`
	Winner string `json:"winner"`
}

// DrawResult is never persisted
type DrawResult struct {
	Numbers []int          `json:"numbers"` // ascending
	Winners map[int]string `json:"winners"`
	Entries []DrawEntry    `json:"entries"` // same order as Numbers
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
