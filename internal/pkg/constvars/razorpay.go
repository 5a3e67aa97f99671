package constvars

const (
	HeaderRazorpaySignature = "X-Razorpay-Signature"

	RazorpayEventOrderPaid = "order.paid"
	RazorpayCurrencyINR    = "INR"

	RazorpayOrdersPath = "/v1/orders"
)

// Notes tags set at order creation; exactly one is carried per order and the
// webhook dispatches on it.
const (
	RazorpayNoteIsBooking             = "isBooking"
	RazorpayNoteIsConsultationBooking = "isConsultationBooking"
	RazorpayNoteIsTravelBooking       = "isTravelBooking"
)
