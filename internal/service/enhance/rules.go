package enhance

import (
	"fmt"
	"strings"
	"time"
)

// RuleEnhancer is the deterministic enhancement engine: it expands known
// anchor clauses with additional terms, appends a template-specific legal
// disclaimer and frames the document with a header and footer. Anchors that
// do not appear in the content are simply skipped, so the engine is safe on
// arbitrary input.
type RuleEnhancer struct {
	now func() time.Time
}

func NewRuleEnhancer() *RuleEnhancer {
	return &RuleEnhancer{now: time.Now}
}

type ruleSet struct {
	keyword    string
	expansions map[string]string
	disclaimer string
}

var ruleSets = []ruleSet{
	{
		keyword: "rental",
		expansions: map[string]string{
			"6. TERMINATION: Either party may terminate this agreement with 30 days written notice.": `6. TERMINATION: Either party may terminate this agreement with 30 days written notice.
7. UTILITIES: The tenant shall be responsible for all utility bills including electricity, water, gas, and internet.
8. MAINTENANCE: The landlord shall be responsible for structural repairs, while the tenant shall maintain cleanliness and report any issues promptly.
9. SUBLETTING: The tenant shall not sublet the property without prior written consent from the landlord.
10. PETS: No pets are allowed without written permission from the landlord.
11. PARKING: Parking space is included in the rent as specified in the property details.
12. SECURITY: The tenant shall not make any structural changes to the property without written consent.`,
			"Landlord Signature: _________________": `Landlord Signature: _________________
Witness: _________________
Name: _________________
Address: _________________
Contact: _________________`,
			"Tenant Signature: _________________": `Tenant Signature: _________________
Witness: _________________
Name: _________________
Address: _________________
Contact: _________________`,
		},
		disclaimer: "This rental agreement template is governed by the laws of India and should be reviewed by a qualified legal professional before use. The parties are advised to seek legal counsel to ensure compliance with applicable laws and regulations, including the Rent Control Act and other relevant statutes.",
	},
	{
		keyword: "employment",
		expansions: map[string]string{
			"4. This contract is subject to applicable labor laws.": `4. This contract is subject to applicable labor laws.
5. WORKPLACE POLICIES: The employee shall comply with all company policies and procedures.
6. CONFIDENTIALITY: The employee shall maintain strict confidentiality of company information.
7. INTELLECTUAL PROPERTY: All work created during employment belongs to the company.
8. NON-COMPETE: The employee shall not work for competitors for 12 months after termination.
9. LEAVE POLICY: The employee is entitled to annual leave as per company policy.
10. PERFORMANCE REVIEW: Performance will be reviewed annually with feedback sessions.`,
		},
		disclaimer: "This employment contract template should be reviewed by an HR professional or legal counsel to ensure compliance with labor laws, including the Industrial Disputes Act, 1947, Minimum Wages Act, 1948, and other applicable regulations.",
	},
	{
		keyword: "nda",
		expansions: map[string]string{
			"4. Upon termination, all confidential materials must be returned or destroyed.": `4. Upon termination, all confidential materials must be returned or destroyed.
5. NON-SOLICITATION: The receiving party shall not solicit employees or clients of the disclosing party.
6. INJUNCTIVE RELIEF: The disclosing party may seek injunctive relief for any breach.
7. SURVIVAL: This agreement survives termination for the specified duration.
8. GOVERNING LAW: This agreement is governed by the laws of India.
9. DISPUTE RESOLUTION: Any disputes shall be resolved through arbitration in India.`,
		},
		disclaimer: "This NDA template provides general guidance but should be customized by legal professionals to address specific business needs and ensure enforceability under applicable laws.",
	},
	{
		keyword: "partnership",
		expansions: map[string]string{
			"4. Disputes shall be resolved through mediation.": `4. Disputes shall be resolved through mediation.
5. FINANCIAL REPORTING: Monthly financial statements shall be provided to all partners.
6. DECISION MAKING: Major decisions require unanimous consent of all partners.
7. CAPITAL CALLS: Partners may be required to contribute additional capital if needed.
8. EXIT STRATEGY: Partners may exit with 90 days written notice.
9. BUYOUT PROVISIONS: Fair market value buyout procedures are established.
10. NON-COMPETE: Partners shall not engage in competing businesses.`,
		},
		disclaimer: "This partnership agreement template should be reviewed by legal professionals to ensure compliance with the Indian Partnership Act, 1932, and other relevant business laws.",
	},
	{
		keyword: "legal notice",
		expansions: map[string]string{
			"This notice is sent without prejudice to our rights and remedies under law.": `This notice is sent without prejudice to our rights and remedies under law.
This notice is sent in accordance with the provisions of the Code of Civil Procedure, 1908, and other applicable laws.
The recipient is hereby put to notice that failure to comply may result in legal proceedings being initiated.`,
		},
		disclaimer: "This legal notice template is for general guidance. For specific legal matters, consult with a qualified legal professional to ensure proper legal procedures are followed.",
	},
	{
		keyword: "power of attorney",
		expansions: map[string]string{
			"REVOCATION: I reserve the right to revoke this Power of Attorney at any time by providing written notice to the Attorney-in-Fact.": `REVOCATION: I reserve the right to revoke this Power of Attorney at any time by providing written notice to the Attorney-in-Fact.
LIMITATIONS: The Attorney-in-Fact shall not have authority to make gifts or transfer property without specific authorization.
ACCOUNTABILITY: The Attorney-in-Fact shall provide regular reports of all actions taken.
COMPENSATION: The Attorney-in-Fact shall not receive compensation unless specifically agreed upon.
LIABILITY: The Attorney-in-Fact shall not be liable for actions taken in good faith.`,
		},
		disclaimer: "This Power of Attorney template should be reviewed by legal professionals to ensure it meets your specific needs and complies with applicable laws.",
	},
}

// Enhance applies the rule set matching the template name and frames the
// result. Unknown template names still get the header, footer and framing.
func (e *RuleEnhancer) Enhance(content, templateName string) string {
	enhanced := content

	lowered := strings.ToLower(templateName)
	for _, set := range ruleSets {
		if !strings.Contains(lowered, set.keyword) {
			continue
		}
		for anchor, replacement := range set.expansions {
			enhanced = strings.ReplaceAll(enhanced, anchor, replacement)
		}
		enhanced += "\n\nLEGAL DISCLAIMER:\n" + set.disclaimer
		break
	}

	now := e.now()
	separator := strings.Repeat("=", 50)
	header := fmt.Sprintf(`LEGAL DOCUMENT - %s
Generated on: %s
Document ID: %d
Enhanced with AI assistance
%s

`, strings.ToUpper(templateName), now.Format("02/01/2006"), now.UnixMilli(), separator)

	footer := fmt.Sprintf(`

%s
END OF DOCUMENT

Note: This document has been enhanced using AI assistance. Please review all content carefully before use.
For legal advice, consult with a qualified legal professional.`, separator)

	return header + enhanced + footer
}
