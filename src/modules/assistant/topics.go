package assistant

import "github.com/mayurii-26/drive-smart-portal/src/core/models"

// topic pairs a service key with its canned record. The table is
// ordered: earlier entries win when more than one key matches a query.
type topic struct {
	key    string
	record models.ServiceTopic
}

// serviceTopics is the full RTO services knowledge base.
var serviceTopics = []topic{
	{"ll", models.ServiceTopic{
		Summary:   "Learner's License (LL) is the first step to obtaining a driving license in India. It allows you to learn driving under supervision.",
		Documents: []string{"Age proof (Birth Certificate, Aadhaar, Passport)", "Address proof (Aadhaar, Utility bill, Bank statement)", "4 passport size photographs", "Medical certificate (Form 1A) for certain categories"},
		Fees:      "Rs. 200 (varies by state)",
		Steps:     []string{"Fill Form 1", "Submit documents at RTO", "Appear for LL test (written)", "Pass the test to receive LL"},
		Timeline:  "7-15 days after passing the test",
		Online:    "Available on Parivahan Sewa portal",
		Offline:   "Visit nearest RTO office",
		Tips:      []string{"Study traffic signs and rules thoroughly", "Practice mock tests online", "Carry all original documents"},
		Sources:   []string{"Parivahan Sewa (parivahan.gov.in)", "State RTO website", "Motor Vehicles Act 1988"},
	}},
	{"dl", models.ServiceTopic{
		Summary:   "Driving License (DL) is the official document that authorizes you to drive motor vehicles on public roads.",
		Documents: []string{"Learner's License (valid for at least 30 days)", "Age and address proof", "4 passport photographs", "Driving test appointment receipt"},
		Fees:      "Rs. 500-2000 (varies by vehicle type and state)",
		Steps:     []string{"Complete 30 days with LL", "Book driving test slot", "Appear for driving test", "Pass test to receive DL"},
		Timeline:  "15-30 days after passing driving test",
		Online:    "Available on Parivahan Sewa portal",
		Offline:   "Visit RTO office for test",
		Tips:      []string{"Practice driving with a licensed driver", "Familiarize yourself with test route", "Ensure vehicle is in good condition"},
		Sources:   []string{"Parivahan Sewa", "State RTO", "Motor Vehicles Act 1988"},
	}},
	{"rc", models.ServiceTopic{
		Summary:   "Registration Certificate (RC) is the official document proving vehicle ownership and registration with RTO.",
		Documents: []string{"Invoice from dealer", "Insurance certificate", "PUC certificate", "Address proof", "PAN card/Aadhaar"},
		Fees:      "Rs. 300-1500 (varies by vehicle type)",
		Steps:     []string{"Purchase vehicle from dealer", "Dealer submits documents to RTO", "RTO processes registration", "Receive RC card"},
		Timeline:  "7-15 days from date of application",
		Online:    "Track status on Parivahan portal",
		Offline:   "Dealer handles registration process",
		Tips:      []string{"Verify all details on invoice", "Ensure insurance is active", "Keep all documents safe"},
		Sources:   []string{"Parivahan Sewa", "Vehicle dealer", "RTO office"},
	}},
	{"rc transfer", models.ServiceTopic{
		Summary:   "RC Transfer is required when vehicle ownership changes, such as buying a used vehicle.",
		Documents: []string{"Original RC", "NOC from previous owner", "Insurance certificate", "PUC certificate", "Address proof of new owner", "Sale agreement"},
		Fees:      "Rs. 500-2000 (varies by state)",
		Steps:     []string{"Obtain NOC from previous owner", "Submit Form 29 and 30 at RTO", "Pay transfer fees", "Complete verification", "Receive updated RC"},
		Timeline:  "15-30 days",
		Online:    "Form submission available online",
		Offline:   "Visit RTO for verification",
		Tips:      []string{"Verify vehicle history", "Check for pending challans", "Ensure NOC is valid"},
		Sources:   []string{"Parivahan Sewa", "RTO office"},
	}},
	{"hypothecation removal", models.ServiceTopic{
		Summary:   "Hypothecation removal is required when vehicle loan is fully paid and you want to remove the financier's name from RC.",
		Documents: []string{"Original RC", "Loan closure letter from bank", "NOC from financier", "Insurance certificate", "PUC certificate"},
		Fees:      "Rs. 200-500",
		Steps:     []string{"Obtain loan closure certificate", "Get NOC from financier", "Submit Form 35 at RTO", "Pay fees and complete process"},
		Timeline:  "7-15 days",
		Online:    "Application available online",
		Offline:   "Visit RTO for submission",
		Tips:      []string{"Ensure all loan dues are cleared", "Get proper NOC from bank", "Keep closure certificate safe"},
		Sources:   []string{"Parivahan Sewa", "Financing bank", "RTO office"},
	}},
	{"noc", models.ServiceTopic{
		Summary:   "No Objection Certificate (NOC) is required when transferring vehicle registration to another state.",
		Documents: []string{"Original RC", "Insurance certificate", "PUC certificate", "Address proof of new state", "Challan clearance certificate"},
		Fees:      "Rs. 100-500",
		Steps:     []string{"Clear all pending challans", "Submit NOC application at current RTO", "Pay fees", "Receive NOC"},
		Timeline:  "7-10 days",
		Online:    "Application available online",
		Offline:   "Visit RTO office",
		Tips:      []string{"Clear all traffic violations first", "Ensure insurance is valid", "Get address proof for new state"},
		Sources:   []string{"Parivahan Sewa", "RTO office"},
	}},
	{"puc", models.ServiceTopic{
		Summary:   "Pollution Under Control (PUC) certificate is mandatory for all vehicles to ensure they meet emission standards.",
		Documents: []string{"RC or vehicle registration number", "Previous PUC (if renewing)"},
		Fees:      "Rs. 50-200",
		Steps:     []string{"Visit authorized PUC center", "Vehicle emission test", "Pay fees", "Receive PUC certificate"},
		Timeline:  "Same day (immediate)",
		Online:    "Available at authorized centers",
		Offline:   "Visit PUC center",
		Tips:      []string{"Get PUC before expiry", "Keep vehicle well-maintained", "Carry RC or vehicle number"},
		Sources:   []string{"Authorized PUC centers", "Parivahan Sewa"},
	}},
	{"insurance", models.ServiceTopic{
		Summary:   "Motor vehicle insurance is mandatory under the Motor Vehicles Act to cover third-party liability.",
		Documents: []string{"RC or vehicle details", "Previous insurance (if renewing)", "Identity proof"},
		Fees:      "Varies by vehicle type and coverage (Rs. 2000-10000+)",
		Steps:     []string{"Compare insurance plans", "Choose policy", "Submit documents", "Pay premium", "Receive policy"},
		Timeline:  "Same day to 3 days",
		Online:    "Available on insurance company websites",
		Offline:   "Visit insurance office or agent",
		Tips:      []string{"Compare multiple insurers", "Check coverage details", "Renew before expiry", "Keep policy document safe"},
		Sources:   []string{"Insurance company websites", "IRDA approved insurers"},
	}},
	{"state penalties", models.ServiceTopic{
		Summary:   "Traffic violation penalties vary by state and violation type as per the Motor Vehicles (Amendment) Act 2019.",
		Documents: []string{"Challan receipt", "Vehicle RC", "DL"},
		Fees:      "Rs. 500-10000+ depending on violation",
		Steps:     []string{"Receive challan", "Pay penalty online or offline", "Keep receipt", "Clear violation from record"},
		Timeline:  "Immediate (online) or same day (offline)",
		Online:    "Available on state traffic police portals",
		Offline:   "Visit traffic police station or court",
		Tips:      []string{"Pay promptly to avoid additional charges", "Keep payment receipts", "Check for discounts on early payment"},
		Sources:   []string{"State traffic police websites", "Parivahan Sewa", "eChallan portals"},
	}},
	{"international permit", models.ServiceTopic{
		Summary:   "International Driving Permit (IDP) allows you to drive in foreign countries that recognize Indian licenses.",
		Documents: []string{"Valid Indian DL", "Passport size photographs", "Passport copy", "Visa copy (if available)"},
		Fees:      "Rs. 1000",
		Steps:     []string{"Apply at RTO or through agent", "Submit documents", "Pay fees", "Receive IDP"},
		Timeline:  "7-10 days",
		Online:    "Application available online",
		Offline:   "Visit RTO office",
		Tips:      []string{"Apply well in advance of travel", "Ensure DL is valid", "Check country requirements"},
		Sources:   []string{"RTO office", "Parivahan Sewa"},
	}},
	{"license category", models.ServiceTopic{
		Summary:   "Adding a new vehicle category to existing driving license requires passing a driving test for that category.",
		Documents: []string{"Original DL", "Medical certificate (for commercial)", "Age proof", "Passport photographs"},
		Fees:      "Rs. 500-2000",
		Steps:     []string{"Apply for new category", "Book test slot", "Appear for driving test", "Pass test to get updated DL"},
		Timeline:  "15-30 days after passing test",
		Online:    "Available on Parivahan Sewa",
		Offline:   "Visit RTO for test",
		Tips:      []string{"Practice for specific vehicle type", "Ensure you meet age requirements", "Carry all documents"},
		Sources:   []string{"Parivahan Sewa", "RTO office"},
	}},
	{"scrappage", models.ServiceTopic{
		Summary:   "Vehicle scrappage policy allows you to officially scrap old vehicles and get benefits for purchasing new ones.",
		Documents: []string{"Original RC", "Vehicle", "Identity proof", "NOC from financier (if applicable)"},
		Fees:      "Varies (may get benefits instead)",
		Steps:     []string{"Register vehicle for scrappage", "Get vehicle evaluated", "Scrap at authorized center", "Receive scrappage certificate", "Get benefits for new vehicle"},
		Timeline:  "15-30 days",
		Online:    "Registration available online",
		Offline:   "Visit authorized scrappage center",
		Tips:      []string{"Check vehicle age eligibility", "Compare scrappage benefits", "Ensure all documents are ready"},
		Sources:   []string{"Government scrappage portal", "Authorized scrappage centers"},
	}},
}

// keywordAliases maps common phrasings to a topic key. Order matters:
// the first alias contained in the query wins.
var keywordAliases = []struct {
	keyword string
	key     string
}{
	{"learner", "ll"},
	{"ll", "ll"},
	{"driving license", "dl"},
	{"dl", "dl"},
	{"registration", "rc"},
	{"rc", "rc"},
	{"transfer", "rc transfer"},
	{"hypothecation", "hypothecation removal"},
	{"noc", "noc"},
	{"no objection", "noc"},
	{"puc", "puc"},
	{"pollution", "puc"},
	{"insurance", "insurance"},
	{"penalty", "state penalties"},
	{"challan", "state penalties"},
	{"fine", "state penalties"},
	{"international", "international permit"},
	{"idp", "international permit"},
	{"category", "license category"},
	{"add", "license category"},
	{"scrap", "scrappage"},
}

// fallbackTopic is returned when no topic matches the query.
var fallbackTopic = models.ServiceTopic{
	Summary:   "I can help you with various RTO services. Please ask about: Learner's License (LL), Driving License (DL), RC Registration/Transfer, Hypothecation Removal, NOC, PUC, Insurance, State Penalties, International Permits, License Category Addition, or Vehicle Scrappage.",
	Documents: []string{},
	Steps:     []string{},
	Tips:      []string{"Be specific about which RTO service you need help with", "Have your documents ready before applying"},
	Sources:   []string{"Parivahan Sewa (parivahan.gov.in)"},
}
