package responses

type ConsultationPricing struct {
	Normal           PriceEntry `json:"normal"`
	Euthanasia       PriceEntry `json:"euthanasia"`
	EuthanasiaOnline PriceEntry `json:"euthanasiaOnline"`
}

type PriceEntry struct {
	Amount           int64 `json:"amount"`
	DiscountedAmount int64 `json:"discountedAmount"`
}
