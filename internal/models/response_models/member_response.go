package response_models

type MemberResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	MobileNo  string `json:"mobile_no"`
	Address   string `json:"address"`
	AdminID   int64  `json:"admin_id"`
	AdminName string `json:"admin_name,omitempty"`
	IsActive  bool   `json:"is_active"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

type MemberStatusResponse struct {
	ID       int64 `json:"id"`
	IsActive bool  `json:"is_active"`
}
