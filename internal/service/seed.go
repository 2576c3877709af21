package service

import "github.com/nyayaai/backend/internal/model"

// DefaultTemplate returns the built-in rental agreement. The template store
// falls back to it whenever a lookup fails, so the generation form is always
// renderable.
func DefaultTemplate() *model.Template {
	return &model.Template{
		Slug:        "rental-agreement",
		Title:       "Rental Agreement",
		Description: "Comprehensive rental agreement for residential properties",
		Category:    "Property",
		IsSystem:    true,
		SortOrder:   1,
		Fields: model.FieldDefs{
			{ID: "landlord_name", Label: "Landlord Name", Type: model.FieldTypeText, Required: true, Placeholder: "Enter landlord's full name"},
			{ID: "tenant_name", Label: "Tenant Name", Type: model.FieldTypeText, Required: true, Placeholder: "Enter tenant's full name"},
			{ID: "property_address", Label: "Property Address", Type: model.FieldTypeTextarea, Required: true, Placeholder: "Enter complete property address"},
			{ID: "monthly_rent", Label: "Monthly Rent (₹)", Type: model.FieldTypeNumber, Required: true, Placeholder: "Enter monthly rent amount"},
			{ID: "security_deposit", Label: "Security Deposit (₹)", Type: model.FieldTypeNumber, Required: true, Placeholder: "Enter security deposit amount"},
			{ID: "lease_duration", Label: "Lease Duration", Type: model.FieldTypeSelect, Required: true, Options: []string{"6 months", "1 year", "2 years", "3 years"}},
			{ID: "start_date", Label: "Lease Start Date", Type: model.FieldTypeDate, Required: true},
			{ID: "special_terms", Label: "Special Terms & Conditions", Type: model.FieldTypeTextarea, Required: false, Placeholder: "Any additional terms or conditions"},
		},
		Body: `RENTAL AGREEMENT

This Rental Agreement is made on {start_date} between {landlord_name} (Landlord) and {tenant_name} (Tenant) for the property located at {property_address}.

TERMS AND CONDITIONS:

1. RENT: The monthly rent is ₹{monthly_rent}, payable on or before the 5th of each month.

2. SECURITY DEPOSIT: A security deposit of ₹{security_deposit} has been paid by the tenant.

3. LEASE DURATION: This agreement is valid for {lease_duration} starting from {start_date}.

4. SPECIAL TERMS: {special_terms}

5. MAINTENANCE: The tenant shall maintain the property in good condition.

6. TERMINATION: Either party may terminate this agreement with 30 days written notice.

Landlord Signature: _________________    Tenant Signature: _________________
{landlord_name}                         {tenant_name}

Date: _______________                   Date: _______________`,
	}
}

// SystemTemplates returns the full set of built-in templates seeded on first
// start. The default rental agreement is always first.
func SystemTemplates() []*model.Template {
	return []*model.Template{
		DefaultTemplate(),
		{
			Slug:        "employment-contract",
			Title:       "Employment Contract",
			Description: "Standard employment contract with terms and conditions",
			Category:    "Employment",
			IsSystem:    true,
			SortOrder:   2,
			Fields: model.FieldDefs{
				{ID: "employer_name", Label: "Employer Name", Type: model.FieldTypeText, Required: true, Placeholder: "Enter company or employer name"},
				{ID: "employee_name", Label: "Employee Name", Type: model.FieldTypeText, Required: true, Placeholder: "Enter employee's full name"},
				{ID: "designation", Label: "Designation", Type: model.FieldTypeText, Required: true, Placeholder: "Enter job title"},
				{ID: "monthly_salary", Label: "Monthly Salary (₹)", Type: model.FieldTypeNumber, Required: true},
				{ID: "joining_date", Label: "Joining Date", Type: model.FieldTypeDate, Required: true},
				{ID: "notice_period", Label: "Notice Period", Type: model.FieldTypeSelect, Required: true, Options: []string{"15 days", "1 month", "2 months", "3 months"}},
			},
			Body: `EMPLOYMENT CONTRACT

This Employment Contract is made between {employer_name} (Employer) and {employee_name} (Employee).

1. POSITION: The Employee is appointed as {designation} with effect from {joining_date}.

2. REMUNERATION: The Employee shall receive a monthly salary of ₹{monthly_salary}.

3. NOTICE PERIOD: Either party may terminate this contract by giving {notice_period} written notice.

4. This contract is subject to applicable labor laws.

Employer Signature: _________________    Employee Signature: _________________
{employer_name}                         {employee_name}`,
		},
		{
			Slug:        "nda",
			Title:       "Non-Disclosure Agreement",
			Description: "Protect confidential information with a professional NDA",
			Category:    "Business",
			IsSystem:    true,
			SortOrder:   3,
			Fields: model.FieldDefs{
				{ID: "disclosing_party", Label: "Disclosing Party", Type: model.FieldTypeText, Required: true},
				{ID: "receiving_party", Label: "Receiving Party", Type: model.FieldTypeText, Required: true},
				{ID: "purpose", Label: "Purpose of Disclosure", Type: model.FieldTypeTextarea, Required: true, Placeholder: "Describe why confidential information is being shared"},
				{ID: "duration", Label: "Confidentiality Duration", Type: model.FieldTypeSelect, Required: true, Options: []string{"1 year", "2 years", "3 years", "5 years"}},
				{ID: "effective_date", Label: "Effective Date", Type: model.FieldTypeDate, Required: true},
			},
			Body: `NON-DISCLOSURE AGREEMENT

This Agreement is made on {effective_date} between {disclosing_party} (Disclosing Party) and {receiving_party} (Receiving Party) for the purpose of {purpose}.

1. The Receiving Party shall hold all disclosed information in strict confidence.

2. Confidential information shall not be shared with any third party without written consent.

3. This obligation remains in force for {duration} from the effective date.

4. Upon termination, all confidential materials must be returned or destroyed.

Disclosing Party: _________________    Receiving Party: _________________`,
		},
		{
			Slug:        "partnership-agreement",
			Title:       "Partnership Agreement",
			Description: "Legal framework for business partnerships",
			Category:    "Business",
			IsSystem:    true,
			SortOrder:   4,
			Fields: model.FieldDefs{
				{ID: "partner_one", Label: "First Partner Name", Type: model.FieldTypeText, Required: true},
				{ID: "partner_two", Label: "Second Partner Name", Type: model.FieldTypeText, Required: true},
				{ID: "business_name", Label: "Business Name", Type: model.FieldTypeText, Required: true},
				{ID: "business_nature", Label: "Nature of Business", Type: model.FieldTypeTextarea, Required: true},
				{ID: "capital_contribution", Label: "Capital Contribution (₹)", Type: model.FieldTypeNumber, Required: true},
				{ID: "profit_sharing", Label: "Profit Sharing Ratio", Type: model.FieldTypeText, Required: true, Placeholder: "e.g. 50:50"},
			},
			Body: `PARTNERSHIP AGREEMENT

This Partnership Agreement is made between {partner_one} and {partner_two} for carrying on the business of {business_nature} under the name {business_name}.

1. CAPITAL: Each partner shall contribute ₹{capital_contribution} as initial capital.

2. PROFIT SHARING: Profits and losses shall be shared in the ratio {profit_sharing}.

3. MANAGEMENT: Both partners shall participate in the management of the business.

4. Disputes shall be resolved through mediation.

Partner Signature: _________________    Partner Signature: _________________
{partner_one}                           {partner_two}`,
		},
		{
			Slug:        "legal-notice",
			Title:       "Legal Notice",
			Description: "Formal legal notice for various purposes",
			Category:    "Legal",
			IsSystem:    true,
			SortOrder:   5,
			Fields: model.FieldDefs{
				{ID: "sender_name", Label: "Sender Name", Type: model.FieldTypeText, Required: true},
				{ID: "recipient_name", Label: "Recipient Name", Type: model.FieldTypeText, Required: true},
				{ID: "recipient_address", Label: "Recipient Address", Type: model.FieldTypeTextarea, Required: true},
				{ID: "subject", Label: "Subject", Type: model.FieldTypeText, Required: true},
				{ID: "grievance", Label: "Grievance Details", Type: model.FieldTypeTextarea, Required: true},
				{ID: "remedy_days", Label: "Days to Remedy", Type: model.FieldTypeNumber, Required: true, Placeholder: "e.g. 15"},
			},
			Body: `LEGAL NOTICE

To,
{recipient_name}
{recipient_address}

Subject: {subject}

Under instructions from my client {sender_name}, I hereby serve upon you the following notice:

{grievance}

You are called upon to remedy the above within {remedy_days} days of receipt of this notice, failing which my client shall be constrained to initiate appropriate legal proceedings at your risk as to costs and consequences.

This notice is sent without prejudice to our rights and remedies under law.

{sender_name}`,
		},
		{
			Slug:        "power-of-attorney",
			Title:       "Power of Attorney",
			Description: "Grant legal authority to act on your behalf",
			Category:    "Legal",
			IsSystem:    true,
			SortOrder:   6,
			Fields: model.FieldDefs{
				{ID: "principal_name", Label: "Principal Name", Type: model.FieldTypeText, Required: true},
				{ID: "principal_address", Label: "Principal Address", Type: model.FieldTypeTextarea, Required: true},
				{ID: "attorney_name", Label: "Attorney-in-Fact Name", Type: model.FieldTypeText, Required: true},
				{ID: "powers_granted", Label: "Powers Granted", Type: model.FieldTypeTextarea, Required: true, Placeholder: "Describe the authority being granted"},
				{ID: "execution_date", Label: "Execution Date", Type: model.FieldTypeDate, Required: true},
			},
			Body: `POWER OF ATTORNEY

I, {principal_name}, residing at {principal_address}, do hereby appoint {attorney_name} as my Attorney-in-Fact with effect from {execution_date}.

POWERS GRANTED: {powers_granted}

The Attorney-in-Fact shall act in my name and on my behalf in respect of the powers granted above.

REVOCATION: I reserve the right to revoke this Power of Attorney at any time by providing written notice to the Attorney-in-Fact.

Principal Signature: _________________
{principal_name}`,
		},
	}
}
