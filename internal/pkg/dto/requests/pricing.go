package requests

type UpdateConsultationPricing struct {
	ConsultationType string `json:"consultationType" validate:"required,oneof=Normal Euthanasia EuthanasiaOnline"`
	Amount           int64  `json:"amount" validate:"required,gt=0"`
	DiscountedAmount int64  `json:"discountedAmount" validate:"gte=0"`
}
