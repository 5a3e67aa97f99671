package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Minio    Minio
		Logger   Logger
	}

	InternalConfig struct {
		App            App
		JWT            JWT
		PaymentGateway PaymentGateway
		Scheduling     Scheduling
		Pricing        Pricing
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		Address                    string
		Timezone                   string
		EndpointPrefix             string
		RabbitMQWhatsAppQueue      string
		RabbitMQSMSQueue           string
		AdminMobileNumber          string
		MaxRequests                int
		ShutdownTimeout            int
		MaxTimeRequestsPerSeconds  int
		RequestBodyLimitInMegabyte int
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}

	Minio struct {
		Port       string
		Host       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	PaymentGateway struct {
		BaseUrl          string
		KeyID            string
		KeySecret        string
		WebhookSecret    string
		TimeoutInSeconds int
	}

	// Scheduling carries the booking-window rules. Hours are local to
	// App.Timezone; the end hour is exclusive.
	Scheduling struct {
		OperatingHourStart            int
		OperatingHourEnd              int
		ConsultationDurationInMinutes int
		ConsultationLeadTimeInHours   int
		ConsultationHorizonInDays     int
		RescheduleCutoffInMinutes     int
	}

	// Pricing holds the boot-time defaults seeded into Redis. Amounts are in
	// whole rupees; the gateway layer converts to paise.
	Pricing struct {
		ConsultationAmount               int64
		ConsultationDiscountedAmount     int64
		EuthanasiaAmount                 int64
		EuthanasiaDiscountedAmount       int64
		EuthanasiaOnlineAmount           int64
		EuthanasiaOnlineDiscountedAmount int64
		TravelDomesticAmount             int64
		TravelInternationalAmount        int64
	}
)
