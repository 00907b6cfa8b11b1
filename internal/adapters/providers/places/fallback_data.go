package places

import "github.com/kezv166-web/medicare/internal/domain/entities"

// cityDataset is one bundled city's canned facilities plus the reference
// coordinate used for nearest-city selection.
type cityDataset struct {
	key        string
	reference  entities.Coordinate
	facilities []*entities.Facility
}

const defaultCityKey = "delhi"

// bundledDatasets ships a small curated facility set per supported city so
// the engine always has something to show when the live provider is down.
var bundledDatasets = map[string]cityDataset{
	"delhi": {
		key:       "delhi",
		reference: entities.Coordinate{Latitude: 28.6139, Longitude: 77.2090},
		facilities: []*entities.Facility{
			{
				ID:       "fallback_hospital_1",
				Name:     "Apollo Hospital - Indraprastha",
				Address:  "Sarita Vihar, Mathura Road, New Delhi, Delhi 110076",
				Location: entities.Coordinate{Latitude: 28.5355, Longitude: 77.2868},
				Types:    []entities.FacilityType{entities.FacilityTypeHospital},
				Phone:    "+91 11 2692 5858",
				MapURL:   "https://maps.google.com/?q=28.5355,77.2868",
				OpenNow:  boolPtr(true),
				Rating:   floatPtr(4.5), RatingCount: intPtr(5200),
				Specialties:    []string{"Cardiology", "Neurology", "Emergency Medicine"},
				BedsAvailable:  intPtr(45),
				BloodAvailable: boolPtr(true), OxygenAvailable: boolPtr(true),
			},
			{
				ID:       "fallback_hospital_2",
				Name:     "Max Super Specialty Hospital",
				Address:  "Press Enclave Road, Saket, New Delhi, Delhi 110017",
				Location: entities.Coordinate{Latitude: 28.5244, Longitude: 77.2066},
				Types:    []entities.FacilityType{entities.FacilityTypeHospital},
				Phone:    "+91 11 2651 5050",
				MapURL:   "https://maps.google.com/?q=28.5244,77.2066",
				OpenNow:  boolPtr(true),
				Rating:   floatPtr(4.3), RatingCount: intPtr(3800),
				Specialties:    []string{"Orthopedics", "Pediatrics", "General Surgery"},
				BedsAvailable:  intPtr(28),
				BloodAvailable: boolPtr(true), OxygenAvailable: boolPtr(false),
			},
			{
				ID:       "fallback_clinic_1",
				Name:     "Fortis Clinic - Greater Kailash",
				Address:  "M-1, Greater Kailash I, New Delhi, Delhi 110048",
				Location: entities.Coordinate{Latitude: 28.5494, Longitude: 77.2426},
				Types:    []entities.FacilityType{entities.FacilityTypeClinic},
				Phone:    "+91 11 4277 6222",
				MapURL:   "https://maps.google.com/?q=28.5494,77.2426",
				OpenNow:  boolPtr(true),
				Rating:   floatPtr(4.6), RatingCount: intPtr(890),
				Specialties: []string{"Family Medicine", "Internal Medicine"},
			},
			{
				ID:       "fallback_clinic_2",
				Name:     "Lajpat Nagar Multispecialty Clinic",
				Address:  "Central Market, Lajpat Nagar II, New Delhi, Delhi 110024",
				Location: entities.Coordinate{Latitude: 28.5677, Longitude: 77.2436},
				Types:    []entities.FacilityType{entities.FacilityTypeClinic},
				Phone:    "+91 11 2984 5678",
				MapURL:   "https://maps.google.com/?q=28.5677,77.2436",
				OpenNow:  boolPtr(false),
				Rating:   floatPtr(4.2), RatingCount: intPtr(420),
				Specialties: []string{"Dermatology", "Gynecology"},
			},
			{
				ID:       "fallback_pharmacy_1",
				Name:     "Apollo Pharmacy - Nehru Place",
				Address:  "Nehru Place, New Delhi, Delhi 110019",
				Location: entities.Coordinate{Latitude: 28.5494, Longitude: 77.2501},
				Types:    []entities.FacilityType{entities.FacilityTypePharmacy},
				Phone:    "+91 11 4166 9999",
				MapURL:   "https://maps.google.com/?q=28.5494,77.2501",
				OpenNow:  boolPtr(true),
				Rating:   floatPtr(4.4), RatingCount: intPtr(650),
			},
			{
				ID:       "fallback_pharmacy_2",
				Name:     "MedPlus Pharmacy",
				Address:  "Defence Colony Market, New Delhi, Delhi 110024",
				Location: entities.Coordinate{Latitude: 28.5698, Longitude: 77.2327},
				Types:    []entities.FacilityType{entities.FacilityTypePharmacy},
				Phone:    "+91 11 4162 5500",
				MapURL:   "https://maps.google.com/?q=28.5698,77.2327",
				OpenNow:  boolPtr(true),
				Rating:   floatPtr(4.1), RatingCount: intPtr(320),
			},
		},
	},
	"mumbai": {
		key:       "mumbai",
		reference: entities.Coordinate{Latitude: 19.0760, Longitude: 72.8777},
		facilities: []*entities.Facility{
			{
				ID:       "fallback_hospital_3",
				Name:     "Lilavati Hospital and Research Centre",
				Address:  "A-791, Bandra Reclamation, Bandra West, Mumbai, Maharashtra 400050",
				Location: entities.Coordinate{Latitude: 19.0596, Longitude: 72.8295},
				Types:    []entities.FacilityType{entities.FacilityTypeHospital},
				Phone:    "+91 22 2640 0000",
				MapURL:   "https://maps.google.com/?q=19.0596,72.8295",
				OpenNow:  boolPtr(true),
				Rating:   floatPtr(4.7), RatingCount: intPtr(6200),
				Specialties:    []string{"Cardiology", "Oncology", "Emergency Medicine"},
				BedsAvailable:  intPtr(52),
				BloodAvailable: boolPtr(true), OxygenAvailable: boolPtr(true),
			},
			{
				ID:       "fallback_pharmacy_3",
				Name:     "1mg Pharmacy - Andheri",
				Address:  "Lokhandwala Complex, Andheri West, Mumbai, Maharashtra 400053",
				Location: entities.Coordinate{Latitude: 19.1368, Longitude: 72.8340},
				Types:    []entities.FacilityType{entities.FacilityTypePharmacy},
				Phone:    "+91 22 6789 1234",
				MapURL:   "https://maps.google.com/?q=19.1368,72.8340",
				OpenNow:  boolPtr(true),
				Rating:   floatPtr(4.3), RatingCount: intPtr(540),
			},
		},
	},
	"bengaluru": {
		key:       "bengaluru",
		reference: entities.Coordinate{Latitude: 12.9716, Longitude: 77.5946},
		facilities: []*entities.Facility{
			{
				ID:       "fallback_hospital_4",
				Name:     "Manipal Hospital - Whitefield",
				Address:  "#143, 212-2015, EPIP Zone, Whitefield, Bengaluru, Karnataka 560066",
				Location: entities.Coordinate{Latitude: 12.9698, Longitude: 77.7499},
				Types:    []entities.FacilityType{entities.FacilityTypeHospital},
				Phone:    "+91 80 2569 0000",
				MapURL:   "https://maps.google.com/?q=12.9698,77.7499",
				OpenNow:  boolPtr(true),
				Rating:   floatPtr(4.5), RatingCount: intPtr(4100),
				Specialties:    []string{"Neurology", "Orthopedics", "Pediatrics"},
				BedsAvailable:  intPtr(38),
				BloodAvailable: boolPtr(true), OxygenAvailable: boolPtr(true),
			},
			{
				ID:       "fallback_clinic_3",
				Name:     "HealthCare Clinic - Koramangala",
				Address:  "80 Feet Road, 5th Block, Koramangala, Bengaluru, Karnataka 560095",
				Location: entities.Coordinate{Latitude: 12.9352, Longitude: 77.6245},
				Types:    []entities.FacilityType{entities.FacilityTypeClinic},
				Phone:    "+91 80 4112 3456",
				MapURL:   "https://maps.google.com/?q=12.9352,77.6245",
				OpenNow:  boolPtr(true),
				Rating:   floatPtr(4.4), RatingCount: intPtr(780),
				Specialties: []string{"Pediatrics", "Family Medicine"},
			},
		},
	},
}

func boolPtr(v bool) *bool        { return &v }
func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
