package delivery

import (
	"bytes"
	"html/template"

	"wayplan/models"
)

var itineraryEmailTmpl = template.Must(template.New("itinerary").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333; max-width: 640px; margin: 0 auto;">
  <h1 style="margin-bottom: 0;">{{.Title}}</h1>
  <p style="margin-top: 4px; color: #666;">{{.Subtitle}}</p>
  <p><strong>{{.City}}</strong> &middot; {{.Date}}</p>

  <div style="background: #f0f6ff; padding: 12px; border-radius: 6px;">
    <p style="margin: 0;"><strong>Weather:</strong> {{.Weather.Forecast}}</p>
    <p style="margin: 4px 0 0;"><strong>What to wear:</strong> {{.Weather.Clothing}}</p>
  </div>

  <table style="width: 100%; border-collapse: collapse; margin-top: 16px;">
    {{range .Items}}
    <tr style="border-bottom: 1px solid #eee;">
      <td style="padding: 8px; vertical-align: top; white-space: nowrap;"><strong>{{.Time}}</strong></td>
      <td style="padding: 8px;">
        <strong>{{.Label}}</strong> &mdash; {{.Title}}<br>
        <span style="color: #666;">{{.Description}}</span>
        {{if .Tips}}<br><em style="color: #888;">{{.Tips}}</em>{{end}}
      </td>
      <td style="padding: 8px; vertical-align: top; text-align: right; white-space: nowrap;">
        {{if .Placeholder}}&ndash;{{else}}&euro;{{.EstimatedCost}}{{end}}
      </td>
    </tr>
    {{end}}
  </table>

  <p style="margin-top: 16px;">
    Estimated total: <strong>&euro;{{.Budget.TotalCost}}</strong>
    (target &euro;{{.Budget.Target}}{{if not .Budget.WithinBudget}}, outside the planned range{{end}})
  </p>
</body>
</html>`))

// RenderItineraryEmail renders the HTML body for an itinerary delivery.
func RenderItineraryEmail(doc models.ItineraryDocument) (string, error) {
	var buf bytes.Buffer
	if err := itineraryEmailTmpl.Execute(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}
