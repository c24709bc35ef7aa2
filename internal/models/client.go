package models

import "time"

// Client is an agent-owned contact. Email uniqueness is scoped per agent, not
// global: two agents may both track jane@example.com.
type Client struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AgentID   uint      `gorm:"not null;uniqueIndex:idx_clients_agent_email" json:"agentId"`
	Agent     User      `gorm:"foreignKey:AgentID" json:"-"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null;uniqueIndex:idx_clients_agent_email" json:"email"`
	Phone     string    `json:"phone"`
	Notes     string    `gorm:"type:text" json:"notes"`
	Status    string    `gorm:"not null;default:active" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OwnerID reports the owning agent, used by the policy ownership comparator.
func (c *Client) OwnerID() uint {
	return c.AgentID
}
