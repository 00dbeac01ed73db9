package parser

import "strings"

// Expense categories and payment methods are closed vocabularies. The
// extractors never invent labels outside of these lists.
const (
	CategoryFood          = "Food & Dining"
	CategoryTransport     = "Transportation"
	CategoryShopping      = "Shopping"
	CategoryEntertainment = "Entertainment"
	CategoryBills         = "Bills & Utilities"
	CategoryHealthcare    = "Healthcare"
	CategoryTravel        = "Travel"
	CategoryEducation     = "Education"
	CategoryPersonalCare  = "Personal Care"

	PaymentCash          = "Cash"
	PaymentCreditCard    = "Credit Card"
	PaymentDebitCard     = "Debit Card"
	PaymentDigitalWallet = "Digital Wallet"
	PaymentBankTransfer  = "Bank Transfer"

	LabelOther = "Other"
)

// Categories lists every expense category, catch-all last.
var Categories = []string{
	CategoryFood,
	CategoryTransport,
	CategoryShopping,
	CategoryEntertainment,
	CategoryBills,
	CategoryHealthcare,
	CategoryTravel,
	CategoryEducation,
	CategoryPersonalCare,
	LabelOther,
}

// PaymentMethods lists every payment method, catch-all last.
var PaymentMethods = []string{
	PaymentCash,
	PaymentCreditCard,
	PaymentDebitCard,
	PaymentDigitalWallet,
	PaymentBankTransfer,
	LabelOther,
}

type keywordEntry struct {
	label    string
	keywords []string
}

// keywordTable is an ordered label -> keywords mapping. Declaration order is
// the tie-break when several labels match: the first declared label wins,
// not the longest or earliest match in the text.
type keywordTable []keywordEntry

// classify returns the first label whose any keyword is a substring of the
// lowercased text. Matching is substring-based, not word-boundary-based, so
// "gas" matches inside "gasoline"; callers accept this imprecision.
func (t keywordTable) classify(lowered string) (string, bool) {
	for _, entry := range t {
		for _, kw := range entry.keywords {
			if strings.Contains(lowered, kw) {
				return entry.label, true
			}
		}
	}
	return "", false
}

// Compact tables for semantic parsing of short typed phrases.
var semanticCategories = keywordTable{
	{CategoryFood, []string{"food", "lunch", "dinner", "breakfast", "restaurant", "coffee", "snack", "meal", "eat", "drink"}},
	{CategoryTransport, []string{"uber", "taxi", "bus", "train", "gas", "fuel", "parking", "metro", "transport"}},
	{CategoryShopping, []string{"amazon", "store", "clothes", "shopping", "buy", "purchase", "mall", "online"}},
	{CategoryEntertainment, []string{"movie", "cinema", "game", "concert", "show", "entertainment", "fun", "netflix"}},
	{CategoryBills, []string{"bill", "electric", "water", "internet", "phone", "utility", "rent", "mortgage"}},
	{CategoryHealthcare, []string{"doctor", "medicine", "pharmacy", "hospital", "health", "medical", "dentist"}},
	{CategoryTravel, []string{"flight", "hotel", "vacation", "trip", "travel", "booking", "airbnb"}},
	{CategoryEducation, []string{"book", "course", "school", "education", "tuition", "class", "learning"}},
	{CategoryPersonalCare, []string{"haircut", "salon", "spa", "cosmetics", "personal", "beauty", "gym"}},
}

var semanticPayments = keywordTable{
	{PaymentCash, []string{"cash", "bills", "coins"}},
	{PaymentCreditCard, []string{"credit", "visa", "mastercard", "amex", "discover"}},
	{PaymentDebitCard, []string{"debit", "card"}},
	{PaymentDigitalWallet, []string{"paypal", "venmo", "apple pay", "google pay", "samsung pay", "wallet", "zelle", "paytm", "phonepe", "gpay"}},
	{PaymentBankTransfer, []string{"transfer", "wire", "ach", "bank", "upi", "neft", "rtgs", "imps"}},
}

// Enhanced tables for transaction parsing. Supersets of the semantic tables
// with merchant and brand names (US and Indian) and payment-network terms.
var enhancedCategories = keywordTable{
	{CategoryFood, []string{
		"starbucks", "mcdonalds", "subway", "dominos", "pizza", "restaurant", "cafe", "coffee",
		"food", "dining", "lunch", "dinner", "breakfast", "meal", "eat", "drink", "bar",
		"kfc", "burger", "taco", "chipotle", "panera", "dunkin", "tim hortons",
		"swiggy", "zomato", "foodpanda", "haldirams", "ccd", "barista",
	}},
	{CategoryTransport, []string{
		"uber", "lyft", "taxi", "cab", "bus", "train", "metro", "subway", "gas", "fuel",
		"parking", "toll", "transport", "airline", "flight", "car rental", "hertz", "avis",
		"ola", "rapido", "auto", "rickshaw", "petrol", "diesel", "irctc",
	}},
	{CategoryShopping, []string{
		"amazon", "walmart", "target", "costco", "ebay", "store", "mall", "shopping",
		"clothes", "clothing", "fashion", "shoes", "electronics", "best buy", "apple store",
		"flipkart", "myntra", "ajio", "nykaa", "big bazaar", "reliance", "dmart",
	}},
	{CategoryEntertainment, []string{
		"netflix", "spotify", "movie", "cinema", "theater", "game", "gaming", "concert",
		"show", "entertainment", "fun", "amusement", "disney", "hulu", "youtube",
		"bookmyshow", "pvr", "inox", "hotstar", "prime video", "zee5",
	}},
	{CategoryBills, []string{
		"electric", "electricity", "water", "gas bill", "internet", "phone", "mobile",
		"utility", "rent", "mortgage", "insurance", "verizon", "att", "comcast",
		"bsnl", "airtel", "jio", "vi", "vodafone", "tata power", "adani", "bescom",
	}},
	{CategoryHealthcare, []string{
		"doctor", "hospital", "pharmacy", "medical", "health", "dentist", "clinic",
		"medicine", "prescription", "cvs", "walgreens", "urgent care",
		"apollo", "fortis", "max", "medplus", "pharmeasy", "netmeds",
	}},
	{CategoryTravel, []string{
		"hotel", "motel", "airbnb", "booking", "expedia", "vacation", "trip", "travel",
		"flight", "airline", "marriott", "hilton", "hyatt",
		"makemytrip", "goibibo", "cleartrip", "yatra", "oyo", "treebo",
	}},
	{CategoryEducation, []string{
		"school", "university", "college", "tuition", "book", "course", "education",
		"learning", "training", "certification", "amazon books",
		"byju", "unacademy", "vedantu", "coursera", "udemy",
	}},
	{CategoryPersonalCare, []string{
		"salon", "spa", "haircut", "beauty", "cosmetics", "gym", "fitness", "personal",
		"care", "massage", "nail", "sephora", "ulta",
		"lakme", "vlcc", "jawed habib", "cult fit", "gold gym",
	}},
}

var enhancedPayments = keywordTable{
	{PaymentCreditCard, []string{
		"credit card", "visa", "mastercard", "amex", "american express", "discover",
		"cc purchase", "credit", "card ending", "hdfc", "icici", "sbi card", "axis",
	}},
	{PaymentDebitCard, []string{
		"debit card", "debit", "card purchase", "pos", "point of sale", "atm card",
	}},
	{PaymentDigitalWallet, []string{
		"paypal", "venmo", "apple pay", "google pay", "samsung pay", "zelle",
		"cashapp", "wallet", "digital payment", "mobile payment", "upi",
		"paytm", "phonepe", "gpay", "bhim", "mobikwik", "freecharge", "amazon pay",
	}},
	{PaymentBankTransfer, []string{
		"bank transfer", "wire transfer", "ach", "direct debit", "online transfer",
		"electronic transfer", "bank payment", "neft", "rtgs", "imps",
	}},
	{PaymentCash, []string{
		"cash", "atm withdrawal", "cash withdrawal", "atm", "cash advance",
	}},
}
