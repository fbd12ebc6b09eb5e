// Package schema defines the closed set of canonical dataset fields and the
// registry that maps historical raw column spellings onto them.
package schema

// Field is a canonical column name in the cleaned dataset.
type Field string

// Canonical fields of the cleaned PERM dataset. The set is closed: every
// cleaned record has exactly these fields, no others.
const (
	FieldCaseNumber             Field = "case_number"
	FieldFiscalYear             Field = "fiscal_year"
	FieldEmployerCity           Field = "employer_city"
	FieldEmployerState          Field = "employer_state"
	FieldEmployerPostalCode     Field = "employer_postal_code"
	FieldEmployerCountry        Field = "employer_country"
	FieldEmployerNumEmployees   Field = "employer_num_employees"
	FieldEmployerYearEstab      Field = "employer_year_established"
	FieldEmployerEconomicSector Field = "employer_economic_sector"
	FieldJobTitle               Field = "job_title"
	FieldJobCity                Field = "job_city"
	FieldJobState               Field = "job_state"
	FieldJobPostalCode          Field = "job_postal_code"
	FieldJobEducationLevel      Field = "job_education_level"
	FieldJobEducationMajor      Field = "job_education_major"
	FieldJobExperienceMonths    Field = "job_experience_months"
	FieldJobWageOfferFrom       Field = "job_wage_offer_from"
	FieldJobWageOfferTo         Field = "job_wage_offer_to"
	FieldJobWageOfferUnit       Field = "job_wage_offer_unit_of_pay"
	FieldPrevailingWage         Field = "prevailing_wage"
	FieldPrevailingWageUnit     Field = "prevailing_wage_unit_of_pay"
	FieldPrevailingWageSOCCode  Field = "prevailing_wage_soc_code"
	FieldPrevailingWageSOCTitle Field = "prevailing_wage_soc_title"
	FieldPrevailingWageJobTitle Field = "prevailing_wage_job_title"
	FieldPrevailingWageLevel    Field = "prevailing_wage_skill_level"
	FieldWorkerClassAdmission   Field = "worker_class_of_admission"
	FieldWorkerCitizenship      Field = "worker_country_of_citizenship"
	FieldWorkerBirthCountry     Field = "worker_country_of_birth"
	FieldWorkerEducationLevel   Field = "worker_education_level"
	FieldWorkerEducationMajor   Field = "worker_education_major"
	FieldWorkerEducationYear    Field = "worker_education_year"
	FieldWorkerEducationInst    Field = "worker_education_institution"
	FieldWorkerEducationCountry Field = "worker_education_country"
)

// FieldCaseStatus is the certification status column. It drives row
// filtering during ingestion and is not part of the cleaned dataset.
const FieldCaseStatus Field = "case_status"

// fieldOrder is the canonical column order of the cleaned dataset.
var fieldOrder = []Field{
	FieldCaseNumber,
	FieldFiscalYear,
	FieldEmployerCity,
	FieldEmployerState,
	FieldEmployerPostalCode,
	FieldEmployerCountry,
	FieldEmployerNumEmployees,
	FieldEmployerYearEstab,
	FieldEmployerEconomicSector,
	FieldJobTitle,
	FieldJobCity,
	FieldJobState,
	FieldJobPostalCode,
	FieldJobEducationLevel,
	FieldJobEducationMajor,
	FieldJobExperienceMonths,
	FieldJobWageOfferFrom,
	FieldJobWageOfferTo,
	FieldJobWageOfferUnit,
	FieldPrevailingWage,
	FieldPrevailingWageUnit,
	FieldPrevailingWageSOCCode,
	FieldPrevailingWageSOCTitle,
	FieldPrevailingWageJobTitle,
	FieldPrevailingWageLevel,
	FieldWorkerClassAdmission,
	FieldWorkerCitizenship,
	FieldWorkerBirthCountry,
	FieldWorkerEducationLevel,
	FieldWorkerEducationMajor,
	FieldWorkerEducationYear,
	FieldWorkerEducationInst,
	FieldWorkerEducationCountry,
}

// Fields returns the canonical fields in dataset column order.
func Fields() []Field {
	fields := make([]Field, len(fieldOrder))
	copy(fields, fieldOrder)
	return fields
}

// IsCanonical reports whether f is one of the canonical dataset fields.
func IsCanonical(f Field) bool {
	for _, known := range fieldOrder {
		if known == f {
			return true
		}
	}
	return false
}

// String implements fmt.Stringer.
func (f Field) String() string {
	return string(f)
}

// Field groups consumed by the value canonicalizers.

// StateFields are the fields holding U.S. state or territory entries.
func StateFields() []Field {
	return []Field{FieldEmployerState, FieldJobState}
}

// PostalFields are the fields holding postal codes.
func PostalFields() []Field {
	return []Field{FieldEmployerPostalCode, FieldJobPostalCode}
}

// WageFields are the fields holding wage amounts.
func WageFields() []Field {
	return []Field{FieldJobWageOfferFrom, FieldJobWageOfferTo, FieldPrevailingWage}
}

// PayUnitFields are the fields holding pay-period units.
func PayUnitFields() []Field {
	return []Field{FieldJobWageOfferUnit, FieldPrevailingWageUnit}
}

// NumericFields are the fields coerced to numbers during value
// canonicalization. All remaining fields are coerced to uppercase text.
func NumericFields() []Field {
	return []Field{
		FieldFiscalYear,
		FieldEmployerNumEmployees,
		FieldEmployerYearEstab,
		FieldJobExperienceMonths,
		FieldJobWageOfferFrom,
		FieldJobWageOfferTo,
		FieldPrevailingWage,
		FieldWorkerEducationYear,
	}
}
