package domain

// Choice is a value/label pair rendered by clients as a filter option.
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type Profession string

const (
	ProfessionHousemaid Profession = "Housemaid"
	ProfessionCleaner   Profession = "Cleaner"
	ProfessionCook      Profession = "Cook"
	ProfessionNanny     Profession = "Nanny"
	ProfessionCaregiver Profession = "Caregiver"
	ProfessionDriver    Profession = "Driver"
	ProfessionGardener  Profession = "Gardener"
)

var professions = []Profession{
	ProfessionHousemaid,
	ProfessionCleaner,
	ProfessionCook,
	ProfessionNanny,
	ProfessionCaregiver,
	ProfessionDriver,
	ProfessionGardener,
}

func Professions() []Profession { return append([]Profession(nil), professions...) }

func (p Profession) Valid() bool { return contains(professions, p) }

type Nationality string

const (
	NationalityFilipino    Nationality = "Filipino"
	NationalityIndonesian  Nationality = "Indonesian"
	NationalityIndian      Nationality = "Indian"
	NationalitySriLankan   Nationality = "Sri Lankan"
	NationalityEthiopian   Nationality = "Ethiopian"
	NationalityKenyan      Nationality = "Kenyan"
	NationalityUgandan     Nationality = "Ugandan"
	NationalityBangladeshi Nationality = "Bangladeshi"
	NationalityNepalese    Nationality = "Nepalese"
)

var nationalities = []Nationality{
	NationalityFilipino,
	NationalityIndonesian,
	NationalityIndian,
	NationalitySriLankan,
	NationalityEthiopian,
	NationalityKenyan,
	NationalityUgandan,
	NationalityBangladeshi,
	NationalityNepalese,
}

func Nationalities() []Nationality { return append([]Nationality(nil), nationalities...) }

func (n Nationality) Valid() bool { return contains(nationalities, n) }

type Religion string

const (
	ReligionChristianity Religion = "Christianity"
	ReligionIslam        Religion = "Islam"
	ReligionHinduism     Religion = "Hinduism"
	ReligionBuddhism     Religion = "Buddhism"
	ReligionOther        Religion = "Other"
)

var religions = []Religion{ReligionChristianity, ReligionIslam, ReligionHinduism, ReligionBuddhism, ReligionOther}

func Religions() []Religion { return append([]Religion(nil), religions...) }

func (r Religion) Valid() bool { return contains(religions, r) }

type MaritalStatus string

const (
	MaritalStatusSingle   MaritalStatus = "Single"
	MaritalStatusMarried  MaritalStatus = "Married"
	MaritalStatusDivorced MaritalStatus = "Divorced"
	MaritalStatusWidowed  MaritalStatus = "Widowed"
)

var maritalStatuses = []MaritalStatus{MaritalStatusSingle, MaritalStatusMarried, MaritalStatusDivorced, MaritalStatusWidowed}

func MaritalStatuses() []MaritalStatus { return append([]MaritalStatus(nil), maritalStatuses...) }

func (m MaritalStatus) Valid() bool { return contains(maritalStatuses, m) }

// FilterChoices lists every enumerated value a client may filter on.
type FilterChoices struct {
	Professions     []Choice `json:"professions"`
	Nationalities   []Choice `json:"nationalities"`
	Religions       []Choice `json:"religions"`
	MaritalStatuses []Choice `json:"marital_statuses"`
	WorkerStatuses  []Choice `json:"worker_statuses"`
	BookingStatuses []Choice `json:"booking_statuses"`
}

func AllChoices() FilterChoices {
	return FilterChoices{
		Professions:     toChoices(professions),
		Nationalities:   toChoices(nationalities),
		Religions:       toChoices(religions),
		MaritalStatuses: toChoices(maritalStatuses),
		WorkerStatuses:  toChoices(workerStatuses),
		BookingStatuses: toChoices(bookingStatuses),
	}
}

func toChoices[T ~string](values []T) []Choice {
	out := make([]Choice, 0, len(values))
	for _, v := range values {
		out = append(out, Choice{Value: string(v), Label: string(v)})
	}
	return out
}

func contains[T comparable](values []T, v T) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
