package constvars

const (
	MongoCollectionBookings       = "bookings"
	MongoCollectionConsultations  = "consultations"
	MongoCollectionTravels        = "travels"
	MongoCollectionServices       = "services"
	MongoCollectionServiceItems   = "serviceitems"
	MongoCollectionServiceRecords = "servicerecords"
	MongoCollectionBranches       = "branches"
	MongoCollectionUsers          = "users"
)
