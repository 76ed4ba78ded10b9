package services

// Letterhead is the fixed company block printed on every estimate.
type Letterhead struct {
	CompanyName  string
	Email        string
	Phone        string
	Website      string
	BranchLabel  string
	AddressLines []string
	Copyright    string
}

// CompanyLetterhead is the letterhead used on all estimates.
var CompanyLetterhead = Letterhead{
	CompanyName: "CHOICEDGE INTERIOR DESIGN",
	Email:       "info@choicedge.com",
	Phone:       "+91 8956125439",
	Website:     "www.choicedge.com",
	BranchLabel: "Main Branch:",
	AddressLines: []string{
		"Shradha House, Office Block No. SI-1, 6th Floor,",
		"Sardar Vallabhbhai Patel Marg (Kingsway), Nagpur-440001",
	},
	Copyright: "© 2025 Choicedge. Unauthorized sharing or distribution of this document is prohibited.",
}

// EstimateNotes are the disclaimers printed under every estimate.
var EstimateNotes = []string{
	"THIS IS A TENTATIVE ESTIMATE (PROVIDES AN APPROX. ESTIMATE) AND IS SUBJECT TO MATERIAL REQUIREMENTS AND PRICES.",
	"THE RATES ARE ONLY ESTIMATED AND NOT REAL OR ACCORDING TO MARKET RATES.",
	"18% GST WILL BE APPLICABLE ON THE FINAL AMOUNT.",
	"APPLIANCES LIKE CHIMNEY, TV, AC, WATER PURIFIER, HANGING LIGHTS, CHANDELIER, WASHING MACHINE, FRIDGE ETC. ARE NOT ADDED IN THE QUOTE.",
	"MATTRESS AND BED-SHEETS ARE ALSO NOT ADDED.",
	"QUOTATION WILL BE PROVIDED AND FINALIZED AFTER THE 3D DESIGNING AND MATERIAL CONFIRMATION.",
	"STUDY CHAIR, PHOTO FRAMES & OTHER ARTEFACTS ARE ALSO NOT INCLUDED.",
	"BALCONY FURNITURE IS ALSO NOT INCLUDED.",
	"PANEL LIGHTS, PROFILE LIGHTS ETC. ARE NOT INCLUDED IN THE ESTIMATE.",
}

// Export filenames.
const (
	EstimatePDFFilename   = "choicedge-detailed-estimate.pdf"
	EstimateExcelFilename = "choicedge-detailed-estimate.xlsx"
)
