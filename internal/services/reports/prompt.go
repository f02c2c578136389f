package reports

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

const systemPrompt = `
You are Bank of America's ESG report generation assistant. Your task is to:

1. Analyze provided ESG metrics data
2. Generate a professional report with:
   - Executive summary
   - Financial ESG metrics analysis
   - SDG alignment mapping
   - Visual data representations (use {{IMAGE:filename.png}} placeholders)
   - Risk assessment and recommendations

Required elements:
- GRI Standards compliance
- SASB materiality assessment
- TCFD climate risk analysis
- Integrated text and image blocks
- At least 3 data visualizations
- Key performance indicators table
- 12-month sustainability roadmap
`

// userPrompt embeds the metrics as 2-space indented JSON, keeping the key
// order the client sent. Absent metrics are written as "undefined".
func userPrompt(metrics json.RawMessage) string {
	return "\n    Generate ESG report for Q3 2024 using these metrics:\n    " +
		indentMetrics(metrics) +
		"\n    \n    Include visualizations for:\n    1. Emissions trajectory\n    2. Diversity ratios\n    3. Climate risk exposure\n    "
}

func indentMetrics(metrics json.RawMessage) string {
	if len(bytes.TrimSpace(metrics)) == 0 {
		return "undefined"
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, metrics, "", "  "); err != nil {
		return string(metrics)
	}
	return buf.String()
}

// cacheKey identifies a completion by everything that is sent upstream.
func cacheKey(model, system, user string) string {
	h := sha256.New()
	h.Write([]byte(model))
	h.Write([]byte{0})
	h.Write([]byte(system))
	h.Write([]byte{0})
	h.Write([]byte(user))
	return hex.EncodeToString(h.Sum(nil))
}

// SampleMetrics is the payload the report preview generates from when no
// dashboard data is at hand.
var SampleMetrics = json.RawMessage(`{
  "environmental": {
    "emissions": 10500,
    "renewableEnergy": 42,
    "financedEmissions": 2.1,
    "greenFinancingRatio": 28
  },
  "social": {
    "gender": 42,
    "ethnicity": 28,
    "financialInclusion": 18
  },
  "governance": {
    "boardDiversity": 35,
    "dataQuality": 92
  },
  "issb": {
    "climateVulnerability": 22
  }
}`)
