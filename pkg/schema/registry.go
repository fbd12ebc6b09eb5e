package schema

import "strings"

// Registry resolves raw column names to canonical fields and recognizes
// accepted certification statuses. It is immutable after construction and
// is passed explicitly to every consumer; there is no package-level
// mutable lookup state.
type Registry struct {
	order    []Field
	aliases  map[Field][]string
	lookup   map[string]Field
	statuses map[string]struct{}
}

// alias lists are registered in order; on collision the first registration
// wins, which makes many-to-one resolution deterministic.
var defaultAliases = []struct {
	field   Field
	aliases []string
}{
	{FieldCaseNumber, []string{"case_number", "case_no"}},
	{FieldFiscalYear, nil}, // obtained from the file name
	{FieldEmployerCity, []string{"employer_city"}},
	{FieldEmployerState, []string{"employer_state", "employer_state_province"}},
	{FieldEmployerPostalCode, []string{"employer_postal_code"}},
	{FieldEmployerCountry, []string{"employer_country"}},
	{FieldEmployerNumEmployees, []string{"employer_num_employees"}},
	{FieldEmployerYearEstab, []string{"employer_yr_estab", "employer_year_commenced_business", "emp_year_commenced_business"}},
	{FieldEmployerEconomicSector, []string{"us_economic_sector"}},
	{FieldJobTitle, []string{"job_info_job_title", "job_title"}},
	{FieldJobCity, []string{"job_info_work_city", "worksite_city"}},
	{FieldJobState, []string{"job_info_work_state", "worksite_state"}},
	{FieldJobPostalCode, []string{"job_info_work_postal_code", "worksite_postal_code"}},
	{FieldJobEducationLevel, []string{"job_info_education", "minimum_education"}},
	{FieldJobEducationMajor, []string{"job_info_major", "major_field_of_study"}},
	{FieldJobExperienceMonths, []string{"job_info_experience_num_months", "required_experience_months"}},
	{FieldJobWageOfferFrom, []string{"wage_offer_from_9089", "wage_offered_from_9089", "wage_offered_from", "wage_offer_from"}},
	{FieldJobWageOfferTo, []string{"wage_offer_to_9089", "wage_offered_to_9089", "wage_offered_to", "wage_offer_to"}},
	{FieldJobWageOfferUnit, []string{"wage_offer_unit_of_pay_9089", "wage_offered_unit_of_pay_9089", "wage_offer_unit_of_pay"}},
	{FieldPrevailingWage, []string{"pw_amount_9089", "pw_wage"}},
	{FieldPrevailingWageUnit, []string{"pw_unit_of_pay_9089", "pw_unit_of_pay"}},
	{FieldPrevailingWageSOCCode, []string{"pw_soc_code"}},
	{FieldPrevailingWageSOCTitle, []string{"pw_soc_title"}},
	{FieldPrevailingWageJobTitle, []string{"pw_job_title_9089", "pw_job_title"}},
	{FieldPrevailingWageLevel, []string{"pw_level_9089", "pw_skill_level"}},
	{FieldWorkerClassAdmission, []string{"class_of_admission"}},
	{FieldWorkerCitizenship, []string{"country_of_citzenship", "country_of_citizenship"}}, // sic
	{FieldWorkerBirthCountry, []string{"fw_info_birth_country", "foreign_worker_birth_country"}},
	{FieldWorkerEducationLevel, []string{"foreign_worker_info_education", "foreign_worker_education"}},
	{FieldWorkerEducationMajor, []string{"foreign_worker_info_major"}},
	{FieldWorkerEducationYear, []string{"fw_info_yr_rel_edu_completed", "foreign_worker_yrs_ed_comp"}},
	{FieldWorkerEducationInst, []string{"foreign_worker_info_inst", "foreign_worker_inst_of_ed"}},
	{FieldWorkerEducationCountry, []string{"foreign_worker_ed_inst_country"}},
}

// statusAliases are the raw spellings of the certification status column.
var statusAliases = []string{"case_status"}

// acceptedStatuses are the canonicalized statuses whose rows are kept.
var acceptedStatuses = []string{"certified", "certified-expired"}

// Default returns the registry for the Department of Labor PERM disclosure
// schema, covering every raw column spelling observed across fiscal years.
func Default() *Registry {
	r := &Registry{
		aliases:  make(map[Field][]string, len(defaultAliases)),
		lookup:   make(map[string]Field),
		statuses: make(map[string]struct{}, len(acceptedStatuses)),
	}

	for _, entry := range defaultAliases {
		r.order = append(r.order, entry.field)
		r.aliases[entry.field] = entry.aliases
		for _, alias := range entry.aliases {
			key := NormalizeColumn(alias)
			if _, taken := r.lookup[key]; !taken { // first registration wins
				r.lookup[key] = entry.field
			}
		}
	}

	for _, status := range acceptedStatuses {
		r.statuses[status] = struct{}{}
	}

	return r
}

// NormalizeColumn canonicalizes a raw column name for lookup:
// lowercased, trimmed, with interior spaces replaced by underscores.
func NormalizeColumn(raw string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), " ", "_")
}

// Resolve maps a raw column name to its canonical field. The second return
// is false for columns with no registered alias; such columns are dropped
// by the caller.
func (r *Registry) Resolve(rawColumn string) (Field, bool) {
	field, ok := r.lookup[NormalizeColumn(rawColumn)]
	return field, ok
}

// Fields returns the canonical fields in registration order.
func (r *Registry) Fields() []Field {
	fields := make([]Field, len(r.order))
	copy(fields, r.order)
	return fields
}

// Aliases returns the registered raw spellings for a canonical field.
func (r *Registry) Aliases(f Field) []string {
	aliases := make([]string, len(r.aliases[f]))
	copy(aliases, r.aliases[f])
	return aliases
}

// StatusAliases returns the raw spellings of the certification status column.
func (r *Registry) StatusAliases() []string {
	aliases := make([]string, len(statusAliases))
	copy(aliases, statusAliases)
	return aliases
}

// ResolveStatus reports whether a raw column name is the status column.
func (r *Registry) ResolveStatus(rawColumn string) bool {
	key := NormalizeColumn(rawColumn)
	for _, alias := range statusAliases {
		if key == alias {
			return true
		}
	}
	return false
}

// NormalizeStatus canonicalizes a raw status value: lowercased, trimmed,
// with interior spaces replaced by underscores.
func NormalizeStatus(raw string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), " ", "_")
}

// AcceptedStatus reports whether a canonicalized status keeps its row.
func (r *Registry) AcceptedStatus(status string) bool {
	_, ok := r.statuses[status]
	return ok
}

// AcceptedStatuses returns the canonicalized statuses whose rows are kept.
func (r *Registry) AcceptedStatuses() []string {
	statuses := make([]string, len(acceptedStatuses))
	copy(statuses, acceptedStatuses)
	return statuses
}
