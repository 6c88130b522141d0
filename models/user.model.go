package models

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// User is a matrimonial profile. All fields except email, password and
// mobile number are optional; enumerated fields accept only their declared
// values. Numeric optional fields are pointers so that an absent value and
// an explicit zero stay distinguishable.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id" form:"-"`
	CreatedAt time.Time `json:"createdAt" form:"-"`
	UpdatedAt time.Time `json:"updatedAt" form:"-"`

	// General information
	Gender        string `json:"gender" form:"gender"`
	CreatedBy     string `json:"createdBy" form:"createdBy"`
	PaymentStatus string `json:"paymentStatus" form:"paymentStatus"`
	Image         string `json:"image" form:"-"`
	ImagePrivacy  string `json:"imagePrivacy" form:"imagePrivacy"`
	CountryCode   string `json:"countryCode" form:"countryCode"`
	MobileNumber  string `json:"mobileNumber" form:"mobileNumber"`
	Email         string `gorm:"uniqueIndex;not null" json:"email" form:"email"`
	Password      string `gorm:"not null" json:"password" form:"password"`
	BureauID      string `json:"bureauId" form:"bureauId"`
	MartialID     string `json:"martialId" form:"martialId"`

	// Multi-step form completion markers
	Step1 string `json:"step1" form:"step1"`
	Step2 string `json:"step2" form:"step2"`
	Step3 string `json:"step3" form:"step3"`
	Step4 string `json:"step4" form:"step4"`
	Step5 string `json:"step5" form:"step5"`
	Step6 string `json:"step6" form:"step6"`
	Step7 string `json:"step7" form:"step7"`
	Step8 string `json:"step8" form:"step8"`
	Step9 string `json:"step9" form:"step9"`

	// Personal details
	FullName       string `json:"fullName" form:"fullName"`
	DateOfBirth    string `json:"dateOfBirth" form:"dateOfBirth"`
	Time           string `json:"time" form:"time"`
	MaritalStatus  string `json:"maritalStatus" form:"maritalStatus"`
	MaleKids       *int   `json:"maleKids" form:"maleKids"`
	FemaleKids     *int   `json:"femaleKids" form:"femaleKids"`
	HasRelatives   string `json:"hasRelatives" form:"hasRelatives"`
	Height         string `json:"height" form:"height"`
	Weight         *int   `json:"weight" form:"weight"`
	PhysicalState  string `json:"physicalState" form:"physicalState"`
	EatingHabits   string `json:"eatingHabits" form:"eatingHabits"`
	SmokingHabits  string `json:"smokingHabits" form:"smokingHabits"`
	DrinkingHabits string `json:"drinkingHabits" form:"drinkingHabits"`

	// Education and employment
	Education           string   `json:"education" form:"education"`
	EmploymentStatus    string   `json:"employmentStatus" form:"employmentStatus"`
	Occupation          string   `json:"occupation" form:"occupation"`
	AnnualIncome        *float64 `json:"annualIncome" form:"annualIncome"`
	JobLocation         string   `json:"jobLocation" form:"jobLocation"`
	OtherBusiness       string   `json:"otherBusiness" form:"otherBusiness"`
	BusinessLocation    string   `json:"businessLocation" form:"businessLocation"`
	OtherBusinessIncome *float64 `json:"otherBusinessIncome" form:"otherBusinessIncome"`
	ExtraTalentedSkills string   `json:"extraTalentedSkills" form:"extraTalentedSkills"`

	// Cultural and religious information
	Religion       string                      `json:"religion" form:"religion"`
	MotherTongue   string                      `json:"motherTongue" form:"motherTongue"`
	LanguagesKnown datatypes.JSONSlice[string] `json:"languagesKnown" form:"languagesKnown"`
	Caste          string                      `json:"caste" form:"caste"`
	Subcaste       string                      `json:"subcaste" form:"subcaste"`
	Gotram         string                      `json:"gotram" form:"gotram"`
	Raasi          string                      `json:"raasi" form:"raasi"`
	Star           string                      `json:"star" form:"star"`

	// Family details
	FatherEmployee   string `json:"fatherEmployee" form:"fatherEmployee"`
	FatherOccupied   string `json:"fatherOccupied" form:"fatherOccupied"`
	MotherEmployee   string `json:"motherEmployee" form:"motherEmployee"`
	MotherOccupied   string `json:"motherOccupied" form:"motherOccupied"`
	TotalBrothers    *int   `json:"totalBrothers" form:"totalBrothers"`
	MarriedBrothers  *int   `json:"marriedBrothers" form:"marriedBrothers"`
	TotalSisters     *int   `json:"totalSisters" form:"totalSisters"`
	MarriedSisters   *int   `json:"marriedSisters" form:"marriedSisters"`
	FamilyValue      string `json:"familyValue" form:"familyValue"`
	FamilyType       string `json:"familyType" form:"familyType"`
	OriginalLocation string `json:"originalLocation" form:"originalLocation"`
	SelectedLocation string `json:"selectedLocation" form:"selectedLocation"`

	// Family property details
	HouseType         string   `json:"houseType" form:"houseType"`
	HouseSqFeet       *float64 `json:"houseSqFeet" form:"houseSqFeet"`
	HouseValue        *float64 `json:"houseValue" form:"houseValue"`
	MonthlyRent       *float64 `json:"monthlyRent" form:"monthlyRent"`
	HouseLocation     string   `json:"houseLocation" form:"houseLocation"`
	OpenPlots         string   `json:"openPlots" form:"openPlots"`
	OpenPlotsSqFeet   *float64 `json:"openPlotsSqFeet" form:"openPlotsSqFeet"`
	OpenPlotsValue    *float64 `json:"openPlotsValue" form:"openPlotsValue"`
	OpenPlotsLocation string   `json:"openPlotsLocation" form:"openPlotsLocation"`

	// Apartment/flat details
	NumberOfApartments      string   `json:"numberOfApartments" form:"numberOfApartments"`
	FlatValue               *float64 `json:"flatValue" form:"flatValue"`
	FlatLocation            string   `json:"flatLocation" form:"flatLocation"`
	AgricultureLand         string   `json:"agricultureLand" form:"agricultureLand"`
	AgricultureLandValue    *float64 `json:"agricultureLandValue" form:"agricultureLandValue"`
	AgricultureLandLocation string   `json:"agricultureLandLocation" form:"agricultureLandLocation"`
	AnyMoreProperties       string   `json:"anyMoreProperties" form:"anyMoreProperties"`
	TotalPropertiesValue    *float64 `json:"totalPropertiesValue" form:"totalPropertiesValue"`

	// Location details
	Country     string `json:"country" form:"country"`
	State       string `json:"state" form:"state"`
	District    string `json:"district" form:"district"`
	Citizenship string `json:"citizenship" form:"citizenship"`
}

// Declared value sets for enumerated fields.
var (
	YesNo             = []string{"yes", "no"}
	MaritalStatuses   = []string{"neverMarried", "awaitingDivorce", "divorced", "widow"}
	PhysicalStates    = []string{"slim", "normal", "athletic", "average", "heavy", "physicallyChallenged"}
	EatingHabits      = []string{"vegetarian", "nonVegetarian", "eggetarian"}
	HabitFrequencies  = []string{"yes", "no", "occasionally"}
	Religions         = []string{"buddhist", "christian", "hindu", "muslim", "sikh", "islam"}
	MotherTongues     = []string{"bengali", "english", "hindi", "kannada", "marathi", "tamil", "telugu"}
	Languages         = []string{"Bengali", "English", "Hindi", "Kannada", "Marathi", "Tamil", "Telugu"}
	Castes            = []string{"general", "obc", "sc", "st"}
	Subcastes         = []string{"kshatriya", "brahmin", "vaishya", "sudra"}
	Gotrams           = []string{"vashistha", "kanva", "gargya", "bharadwaja", "atreyas"}
	Raasis            = []string{"mesha", "vrishabha", "mithuna", "karka", "simha", "kanya", "tula", "vrischika", "dhanu", "makara", "kumbha", "meena"}
	Stars             = []string{"ashwini", "bharani", "krittika", "rohini", "mrigashira", "ardra", "punarvasu", "pushya", "ashlesha", "magha"}
	OccupationModes   = []string{"full-time", "part-time", "freelancer", "retired"}
	OtherBusinesses   = []string{"1", "2", "3", "4", "null"}
	FamilyValues      = []string{"orthodox", "traditional"}
	FamilyTypes       = []string{"joint", "nuclear"}
	OriginalLocations = []string{"location1", "location2", "location3"}
	SelectedLocations = []string{"selectedLocation1", "selectedLocation2"}
)

// ValidationError reports a field whose value violates the schema.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks enumerated values, numeric ranges and the conditional
// requirements between fields. It runs on every create and update via the
// BeforeSave hook so all write paths share one rule set.
func (u *User) Validate() error {
	enums := []struct {
		field   string
		value   string
		allowed []string
	}{
		{"maritalStatus", u.MaritalStatus, MaritalStatuses},
		{"hasRelatives", u.HasRelatives, YesNo},
		{"physicalState", u.PhysicalState, PhysicalStates},
		{"eatingHabits", u.EatingHabits, EatingHabits},
		{"smokingHabits", u.SmokingHabits, HabitFrequencies},
		{"drinkingHabits", u.DrinkingHabits, HabitFrequencies},
		{"otherBusiness", u.OtherBusiness, OtherBusinesses},
		{"religion", u.Religion, Religions},
		{"motherTongue", u.MotherTongue, MotherTongues},
		{"caste", u.Caste, Castes},
		{"subcaste", u.Subcaste, Subcastes},
		{"gotram", u.Gotram, Gotrams},
		{"raasi", u.Raasi, Raasis},
		{"star", u.Star, Stars},
		{"fatherEmployee", u.FatherEmployee, YesNo},
		{"fatherOccupied", u.FatherOccupied, OccupationModes},
		{"motherEmployee", u.MotherEmployee, YesNo},
		{"motherOccupied", u.MotherOccupied, OccupationModes},
		{"familyValue", u.FamilyValue, FamilyValues},
		{"familyType", u.FamilyType, FamilyTypes},
		{"originalLocation", u.OriginalLocation, OriginalLocations},
		{"selectedLocation", u.SelectedLocation, SelectedLocations},
	}
	for _, e := range enums {
		if err := checkEnum(e.field, e.value, e.allowed); err != nil {
			return err
		}
	}

	for _, lang := range u.LanguagesKnown {
		if err := checkEnum("languagesKnown", lang, Languages); err != nil {
			return err
		}
	}

	ranges := []struct {
		field    string
		value    *int
		min, max int
	}{
		{"maleKids", u.MaleKids, 0, 10},
		{"femaleKids", u.FemaleKids, 0, 10},
		{"weight", u.Weight, 30, 200},
		{"totalBrothers", u.TotalBrothers, 0, 10},
		{"marriedBrothers", u.MarriedBrothers, 0, 10},
		{"totalSisters", u.TotalSisters, 0, 10},
		{"marriedSisters", u.MarriedSisters, 0, 10},
	}
	for _, r := range ranges {
		if err := checkIntRange(r.field, r.value, r.min, r.max); err != nil {
			return err
		}
	}

	// Conditional requirements: field B is mandatory only when field A holds
	// a specific value.
	if u.FatherEmployee == "yes" && u.FatherOccupied == "" {
		return &ValidationError{"fatherOccupied", "required when fatherEmployee is \"yes\""}
	}
	if u.MotherEmployee == "yes" && u.MotherOccupied == "" {
		return &ValidationError{"motherOccupied", "required when motherEmployee is \"yes\""}
	}
	if u.TotalBrothers != nil && *u.TotalBrothers > 0 && u.MarriedBrothers == nil {
		return &ValidationError{"marriedBrothers", "required when totalBrothers is greater than 0"}
	}
	if u.TotalSisters != nil && *u.TotalSisters > 0 && u.MarriedSisters == nil {
		return &ValidationError{"marriedSisters", "required when totalSisters is greater than 0"}
	}

	return nil
}

// BeforeSave runs schema validation on every create and update.
func (u *User) BeforeSave(tx *gorm.DB) error {
	return u.Validate()
}

// BeforeCreate applies schema defaults.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	zero := 0
	if u.MaleKids == nil {
		u.MaleKids = &zero
	}
	if u.FemaleKids == nil {
		u.FemaleKids = &zero
	}
	if u.OtherBusiness == "" {
		u.OtherBusiness = "null"
	}
	return nil
}

func checkEnum(field, value string, allowed []string) error {
	if value == "" {
		return nil
	}
	for _, v := range allowed {
		if value == v {
			return nil
		}
	}
	return &ValidationError{field, fmt.Sprintf("%q is not an allowed value", value)}
}

func checkIntRange(field string, value *int, min, max int) error {
	if value == nil {
		return nil
	}
	if *value < min || *value > max {
		return &ValidationError{field, fmt.Sprintf("must be between %d and %d", min, max)}
	}
	return nil
}
