package web

import "html/template"

func templates() *template.Template {
	t := template.Must(template.New("index").Parse(indexHTML))
	template.Must(t.New("report").Parse(reportHTML))
	return t
}

const indexHTML = `<!DOCTYPE html>
<html>
<head>
<title>RCM Denial Analysis</title>
<style>
body { font-family: sans-serif; max-width: 60rem; margin: 2rem auto; padding: 0 1rem; }
.error { color: #b00020; border: 1px solid #b00020; padding: 0.5rem 1rem; }
.warning { color: #8a6d00; }
</style>
</head>
<body>
<h1>Medical Billing Denial Analysis and RCM Performance Review</h1>
<p>Upload your Excel/CSV file to identify top denied CPT codes, analyze
potential root causes, and get recommendations for improving your revenue
cycle management.</p>
<p>Recognized columns: CPT Code, Insurance Company Name, Physician Name,
Payment Amount, Balance, and optionally Denial Reason.</p>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
{{range .Warnings}}<p class="warning">Warning: {{.}}</p>{{end}}
<form action="/analyze" method="post" enctype="multipart/form-data">
<input type="file" name="file" accept=".csv,.xlsx,.xls" required>
<button type="submit">Analyze</button>
</form>
</body>
</html>`

const reportHTML = `<!DOCTYPE html>
<html>
<head>
<title>Denial Analysis — {{.Filename}}</title>
<style>
body { font-family: sans-serif; max-width: 60rem; margin: 2rem auto; padding: 0 1rem; }
table { border-collapse: collapse; margin: 1rem 0; }
th, td { border: 1px solid #ccc; padding: 0.3rem 0.7rem; text-align: left; }
.bar { background: #4472c4; height: 1rem; }
.warning { color: #8a6d00; }
pre { white-space: pre-wrap; background: #f6f6f6; padding: 1rem; }
</style>
</head>
<body>
<h1>Denial Analysis: {{.Filename}}</h1>
{{range .Warnings}}<p class="warning">Warning: {{.}}</p>{{end}}
<p>Detected columns: {{range $i, $c := .Columns}}{{if $i}}, {{end}}{{$c}}{{end}}</p>
<p>Records analyzed: {{.TotalRecords}}. Denied: {{.DeniedCount}}.</p>

<h2>Uploaded Data Preview</h2>
<table>
<tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr>
{{range .Preview}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>{{end}}
</table>

{{if .NoDenials}}
<p>It appears there are no denied claims in the uploaded data.</p>
{{else}}
<h2>Top CPT Codes by Denial Count</h2>
<table>
<tr><th>CPT Code</th><th>Denial Count</th></tr>
{{range .RankedCodes}}<tr><td>{{.Code}}</td><td>{{.Count}}</td></tr>{{end}}
</table>

<h2>CPT Codes by Denial Rate</h2>
<table>
<tr><th>CPT Code</th><th>Denial Rate</th></tr>
{{range .CodeRates}}<tr><td>{{.Code}}</td><td>{{printf "%.2f" .Rate}}</td></tr>{{end}}
</table>

{{range .Charts}}
<h2>{{.Title}}</h2>
<table>
<tr><th>{{.CategoryAxis}}</th><th>{{.ValueAxis}}</th><th></th></tr>
{{range .Rows}}<tr><td>{{.Name}}</td><td>{{.Count}}</td><td style="width:20rem"><div class="bar" style="width:{{.Pct}}%"></div></td></tr>{{end}}
</table>
{{end}}
{{end}}

<h2>Detecting Root Causes</h2>
<pre>{{.RootCauses}}</pre>

<h2>Recommending Fixes and Strategies</h2>
<pre>{{.Fixes}}</pre>

<p><a href="/">Analyze another file</a></p>
</body>
</html>`
