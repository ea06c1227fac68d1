package request_models

type CreateMemberRequest struct {
	Name     string `json:"name" binding:"required"`
	MobileNo string `json:"mobile_no" binding:"required"`
	Address  string `json:"address" binding:"required"`
}
