package normalize

import "github.com/calegray/facade/internal/model"

// L&I violations carry a resolution date when cured and a case status
// string otherwise. The date wins; an explicit status decides the rest.
func mapLIViolation(r model.RawRecord) (model.NormalizedRecord, bool) {
	key := str(r, "violationnumber")
	if key == "" {
		return model.NormalizedRecord{}, false
	}

	status := model.StatusUnknown
	if str(r, "violationresolutiondate") != "" {
		status = model.StatusResolved
	} else {
		switch upper(str(r, "violationstatus", "casestatus")) {
		case "OPEN", "IN VIOLATION":
			status = model.StatusOpen
		case "CLOSED", "COMPLIED", "RESOLVED":
			status = model.StatusResolved
		}
	}

	return model.NormalizedRecord{
		Kind:          model.KindViolation,
		NaturalKey:    key,
		IssuedAt:      date(r, "violationdate"),
		Status:        status,
		Description:   str(r, "violationcodetitle", "violationcode"),
		SeverityClass: str(r, "violationcode"),
	}, true
}
