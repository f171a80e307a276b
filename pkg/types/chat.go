package types

type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Message is one chat turn as exchanged between the widget and /api/chat.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ProviderRole collapses every role other than user into the model role.
func (r Role) ProviderRole() Role {
	if r == RoleUser {
		return RoleUser
	}
	return RoleModel
}

// Valid reports whether both role and content are non-empty. Whitespace counts
// as content: a blank-looking model turn replayed by the widget must not fail.
func (m Message) Valid() bool {
	return m.Role != "" && m.Content != ""
}

// ChatRequest is the body accepted by the chat endpoint.
type ChatRequest struct {
	Messages []Message `json:"messages"`
}
