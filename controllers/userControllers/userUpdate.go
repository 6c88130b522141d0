package userController

import (
	"vivah/models"

	"gorm.io/datatypes"
)

// updateUserRequest carries any subset of profile fields. Numeric fields are
// pointers so that an explicit zero is distinguishable from an omitted key;
// text fields treat the empty string as "not provided". The password is not
// updatable through this endpoint, and image is accepted as a raw filename
// reference only.
type updateUserRequest struct {
	Gender        string `json:"gender"`
	CreatedBy     string `json:"createdBy"`
	PaymentStatus string `json:"paymentStatus"`
	Image         string `json:"image"`
	ImagePrivacy  string `json:"imagePrivacy"`
	CountryCode   string `json:"countryCode"`
	MobileNumber  string `json:"mobileNumber"`
	Email         string `json:"email"`
	BureauID      string `json:"bureauId"`
	MartialID     string `json:"martialId"`

	Step1 string `json:"step1"`
	Step2 string `json:"step2"`
	Step3 string `json:"step3"`
	Step4 string `json:"step4"`
	Step5 string `json:"step5"`
	Step6 string `json:"step6"`
	Step7 string `json:"step7"`
	Step8 string `json:"step8"`
	Step9 string `json:"step9"`

	FullName       string `json:"fullName"`
	DateOfBirth    string `json:"dateOfBirth"`
	Time           string `json:"time"`
	MaritalStatus  string `json:"maritalStatus"`
	MaleKids       *int   `json:"maleKids"`
	FemaleKids     *int   `json:"femaleKids"`
	HasRelatives   string `json:"hasRelatives"`
	Height         string `json:"height"`
	Weight         *int   `json:"weight"`
	PhysicalState  string `json:"physicalState"`
	EatingHabits   string `json:"eatingHabits"`
	SmokingHabits  string `json:"smokingHabits"`
	DrinkingHabits string `json:"drinkingHabits"`

	Education           string   `json:"education"`
	EmploymentStatus    string   `json:"employmentStatus"`
	Occupation          string   `json:"occupation"`
	AnnualIncome        *float64 `json:"annualIncome"`
	JobLocation         string   `json:"jobLocation"`
	OtherBusiness       string   `json:"otherBusiness"`
	BusinessLocation    string   `json:"businessLocation"`
	OtherBusinessIncome *float64 `json:"otherBusinessIncome"`
	ExtraTalentedSkills string   `json:"extraTalentedSkills"`

	Religion       string    `json:"religion"`
	MotherTongue   string    `json:"motherTongue"`
	LanguagesKnown *[]string `json:"languagesKnown"`
	Caste          string    `json:"caste"`
	Subcaste       string    `json:"subcaste"`
	Gotram         string    `json:"gotram"`
	Raasi          string    `json:"raasi"`
	Star           string    `json:"star"`

	FatherEmployee   string `json:"fatherEmployee"`
	FatherOccupied   string `json:"fatherOccupied"`
	MotherEmployee   string `json:"motherEmployee"`
	MotherOccupied   string `json:"motherOccupied"`
	TotalBrothers    *int   `json:"totalBrothers"`
	MarriedBrothers  *int   `json:"marriedBrothers"`
	TotalSisters     *int   `json:"totalSisters"`
	MarriedSisters   *int   `json:"marriedSisters"`
	FamilyValue      string `json:"familyValue"`
	FamilyType       string `json:"familyType"`
	OriginalLocation string `json:"originalLocation"`
	SelectedLocation string `json:"selectedLocation"`

	HouseType         string   `json:"houseType"`
	HouseSqFeet       *float64 `json:"houseSqFeet"`
	HouseValue        *float64 `json:"houseValue"`
	MonthlyRent       *float64 `json:"monthlyRent"`
	HouseLocation     string   `json:"houseLocation"`
	OpenPlots         string   `json:"openPlots"`
	OpenPlotsSqFeet   *float64 `json:"openPlotsSqFeet"`
	OpenPlotsValue    *float64 `json:"openPlotsValue"`
	OpenPlotsLocation string   `json:"openPlotsLocation"`

	NumberOfApartments      string   `json:"numberOfApartments"`
	FlatValue               *float64 `json:"flatValue"`
	FlatLocation            string   `json:"flatLocation"`
	AgricultureLand         string   `json:"agricultureLand"`
	AgricultureLandValue    *float64 `json:"agricultureLandValue"`
	AgricultureLandLocation string   `json:"agricultureLandLocation"`
	AnyMoreProperties       string   `json:"anyMoreProperties"`
	TotalPropertiesValue    *float64 `json:"totalPropertiesValue"`

	Country     string `json:"country"`
	State       string `json:"state"`
	District    string `json:"district"`
	Citizenship string `json:"citizenship"`
}

// applyTo performs the field-level merge: only supplied fields overwrite the
// stored values, everything else is left untouched.
func (r *updateUserRequest) applyTo(user *models.User) {
	setText(&user.Gender, r.Gender)
	setText(&user.CreatedBy, r.CreatedBy)
	setText(&user.PaymentStatus, r.PaymentStatus)
	setText(&user.Image, r.Image)
	setText(&user.ImagePrivacy, r.ImagePrivacy)
	setText(&user.CountryCode, r.CountryCode)
	setText(&user.MobileNumber, r.MobileNumber)
	setText(&user.Email, r.Email)
	setText(&user.BureauID, r.BureauID)
	setText(&user.MartialID, r.MartialID)

	setText(&user.Step1, r.Step1)
	setText(&user.Step2, r.Step2)
	setText(&user.Step3, r.Step3)
	setText(&user.Step4, r.Step4)
	setText(&user.Step5, r.Step5)
	setText(&user.Step6, r.Step6)
	setText(&user.Step7, r.Step7)
	setText(&user.Step8, r.Step8)
	setText(&user.Step9, r.Step9)

	setText(&user.FullName, r.FullName)
	setText(&user.DateOfBirth, r.DateOfBirth)
	setText(&user.Time, r.Time)
	setText(&user.MaritalStatus, r.MaritalStatus)
	setInt(&user.MaleKids, r.MaleKids)
	setInt(&user.FemaleKids, r.FemaleKids)
	setText(&user.HasRelatives, r.HasRelatives)
	setText(&user.Height, r.Height)
	setInt(&user.Weight, r.Weight)
	setText(&user.PhysicalState, r.PhysicalState)
	setText(&user.EatingHabits, r.EatingHabits)
	setText(&user.SmokingHabits, r.SmokingHabits)
	setText(&user.DrinkingHabits, r.DrinkingHabits)

	setText(&user.Education, r.Education)
	setText(&user.EmploymentStatus, r.EmploymentStatus)
	setText(&user.Occupation, r.Occupation)
	setFloat(&user.AnnualIncome, r.AnnualIncome)
	setText(&user.JobLocation, r.JobLocation)
	setText(&user.OtherBusiness, r.OtherBusiness)
	setText(&user.BusinessLocation, r.BusinessLocation)
	setFloat(&user.OtherBusinessIncome, r.OtherBusinessIncome)
	setText(&user.ExtraTalentedSkills, r.ExtraTalentedSkills)

	setText(&user.Religion, r.Religion)
	setText(&user.MotherTongue, r.MotherTongue)
	if r.LanguagesKnown != nil {
		user.LanguagesKnown = datatypes.JSONSlice[string](*r.LanguagesKnown)
	}
	setText(&user.Caste, r.Caste)
	setText(&user.Subcaste, r.Subcaste)
	setText(&user.Gotram, r.Gotram)
	setText(&user.Raasi, r.Raasi)
	setText(&user.Star, r.Star)

	setText(&user.FatherEmployee, r.FatherEmployee)
	setText(&user.FatherOccupied, r.FatherOccupied)
	setText(&user.MotherEmployee, r.MotherEmployee)
	setText(&user.MotherOccupied, r.MotherOccupied)
	setInt(&user.TotalBrothers, r.TotalBrothers)
	setInt(&user.MarriedBrothers, r.MarriedBrothers)
	setInt(&user.TotalSisters, r.TotalSisters)
	setInt(&user.MarriedSisters, r.MarriedSisters)
	setText(&user.FamilyValue, r.FamilyValue)
	setText(&user.FamilyType, r.FamilyType)
	setText(&user.OriginalLocation, r.OriginalLocation)
	setText(&user.SelectedLocation, r.SelectedLocation)

	setText(&user.HouseType, r.HouseType)
	setFloat(&user.HouseSqFeet, r.HouseSqFeet)
	setFloat(&user.HouseValue, r.HouseValue)
	setFloat(&user.MonthlyRent, r.MonthlyRent)
	setText(&user.HouseLocation, r.HouseLocation)
	setText(&user.OpenPlots, r.OpenPlots)
	setFloat(&user.OpenPlotsSqFeet, r.OpenPlotsSqFeet)
	setFloat(&user.OpenPlotsValue, r.OpenPlotsValue)
	setText(&user.OpenPlotsLocation, r.OpenPlotsLocation)

	setText(&user.NumberOfApartments, r.NumberOfApartments)
	setFloat(&user.FlatValue, r.FlatValue)
	setText(&user.FlatLocation, r.FlatLocation)
	setText(&user.AgricultureLand, r.AgricultureLand)
	setFloat(&user.AgricultureLandValue, r.AgricultureLandValue)
	setText(&user.AgricultureLandLocation, r.AgricultureLandLocation)
	setText(&user.AnyMoreProperties, r.AnyMoreProperties)
	setFloat(&user.TotalPropertiesValue, r.TotalPropertiesValue)

	setText(&user.Country, r.Country)
	setText(&user.State, r.State)
	setText(&user.District, r.District)
	setText(&user.Citizenship, r.Citizenship)
}

// setText overwrites only when a value was supplied; the empty string means
// "not provided" for text fields.
func setText(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// setInt overwrites whenever the key was present, zero included.
func setInt(dst **int, v *int) {
	if v != nil {
		*dst = v
	}
}

// setFloat overwrites whenever the key was present, zero included.
func setFloat(dst **float64, v *float64) {
	if v != nil {
		*dst = v
	}
}
