package webhook

import "petfirst-service/internal/app/models"

// notificationTemplate pairs a WhatsApp template with its header image.
type notificationTemplate struct {
	Name     string
	MediaURL string
}

const templateImageBaseURL = "https://dev-pet-first.s3.ap-south-1.amazonaws.com/assets/whatsapp-template-image"

var (
	templateOnlineConsultation = notificationTemplate{Name: "online_consultation", MediaURL: templateImageBaseURL + "/WA+1.jpeg"}
	templateVaccination        = notificationTemplate{Name: "vaccination_appoinment", MediaURL: templateImageBaseURL + "/WA+2.jpeg"}
	templateHealthCheckup      = notificationTemplate{Name: "health_checkup", MediaURL: templateImageBaseURL + "/WA+3.jpeg"}
	templateBloodTest          = notificationTemplate{Name: "blood_test", MediaURL: templateImageBaseURL + "/WA+4.jpeg"}
	templateHospitalVisit      = notificationTemplate{Name: "hospital_appointment", MediaURL: templateImageBaseURL + "/WA+5.jpeg"}
	templateSurgery            = notificationTemplate{Name: "surgery", MediaURL: templateImageBaseURL + "/WA+6.jpeg"}
	templateTravel             = notificationTemplate{Name: "travel_certificate", MediaURL: templateImageBaseURL + "/WA+7.jpeg"}
	templateEuthanasia         = notificationTemplate{Name: "euthanasia_appointment_new", MediaURL: templateImageBaseURL + "/WA+8.jpeg"}
)

func consultationTemplate(consultationType models.ConsultationType) notificationTemplate {
	switch consultationType {
	case models.ConsultationTypeEuthanasia:
		return templateEuthanasia
	default:
		return templateOnlineConsultation
	}
}

// bookingTemplate maps a catalog service slug to its appointment template.
// Unrecognized slugs fall back to the general health-checkup template.
func bookingTemplate(serviceSlug string) notificationTemplate {
	switch serviceSlug {
	case "vaccinations":
		return templateVaccination
	case "check-ups":
		return templateHealthCheckup
	case "blood-tests":
		return templateBloodTest
	case "hospital-visit":
		return templateHospitalVisit
	case "surgery":
		return templateSurgery
	default:
		return templateHealthCheckup
	}
}
