package deliveryapi

import "entrega-tracker/internal/domain"

// deliveryDTO mirrors the backend's delivery representation.
type deliveryDTO struct {
	ID           int64  `json:"id"`
	Receiver     string `json:"receiver"`
	CEP          string `json:"cep"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	Description  string `json:"description"`
	Status       string `json:"status"`
	UserID       int64  `json:"user_id"`
	ReceivedBy   string `json:"received_by"`
	CPFReceiver  string `json:"cpf_receiver"`
	Relation     string `json:"relation"`
	PhotoURL     string `json:"photo_url"`
}

func (d deliveryDTO) toDomain() domain.Delivery {
	return domain.Delivery{
		ID:          d.ID,
		OwnerUserID: d.UserID,
		Receiver:    d.Receiver,
		Address: domain.Address{
			CEP:          d.CEP,
			Street:       d.Street,
			Number:       d.Number,
			Complement:   d.Complement,
			Neighborhood: d.Neighborhood,
			City:         d.City,
			State:        d.State,
		},
		Description: d.Description,
		Status:      domain.DeliveryStatus(d.Status),
		Proof: domain.Proof{
			ReceivedBy:  d.ReceivedBy,
			CPFReceiver: d.CPFReceiver,
			Relation:    d.Relation,
			PhotoURL:    d.PhotoURL,
		},
	}
}

// createRequest is the POST /deliveries body. The status is always
// "Em andamento" on creation; the backend owns every later change.
type createRequest struct {
	Receiver     string `json:"receiver"`
	CEP          string `json:"cep"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	Description  string `json:"description"`
	Status       string `json:"status"`
	UserID       int64  `json:"user_id"`
}

func newCreateRequest(n domain.NewDelivery, userID int64) createRequest {
	return createRequest{
		Receiver:     n.Receiver,
		CEP:          n.Address.CEP,
		Street:       n.Address.Street,
		Number:       n.Address.Number,
		Complement:   n.Address.Complement,
		Neighborhood: n.Address.Neighborhood,
		City:         n.Address.City,
		State:        n.Address.State,
		Description:  n.Description,
		Status:       string(domain.StatusInProgress),
		UserID:       userID,
	}
}

// confirmRequest is the PUT /deliveries/{id}/confirm body.
type confirmRequest struct {
	ReceivedBy  string `json:"received_by"`
	CPFReceiver string `json:"cpf_receiver"`
	Relation    string `json:"relation"`
	PhotoURL    string `json:"photo_url"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	UserID int64 `json:"user_id"`
}
