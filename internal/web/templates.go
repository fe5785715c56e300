package web

import (
	"html/template"

	"fjacquet/saldo-xlsx/internal/models"
)

// pageData feeds the single-page template. Flash carries the outcome message
// of the last action; Processed is the number of files handled by the run
// that produced the current render (zero on a plain page load).
type pageData struct {
	Flash     string
	FlashKind string // "success" or "warning"
	Report    *models.Report
	Processed int
}

var pageTemplate = template.Must(template.New("index").Parse(pageHTML))

const pageHTML = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>Extrator de Saldos</title>
<style>
body { font-family: sans-serif; margin: 2rem auto; max-width: 56rem; color: #222; }
h1 { font-size: 1.5rem; }
form { margin: 1.5rem 0; padding: 1rem; border: 1px solid #ccc; border-radius: 6px; }
table { border-collapse: collapse; margin: 0.5rem 0 1.5rem; width: 100%; }
th, td { border: 1px solid #ccc; padding: 0.35rem 0.6rem; text-align: left; }
th { background: #f2f2f2; }
.flash { padding: 0.6rem 1rem; border-radius: 6px; margin: 1rem 0; }
.flash.success { background: #e6f4ea; border: 1px solid #34a853; }
.flash.warning { background: #fdecea; border: 1px solid #ea4335; }
.meta { color: #777; font-size: 0.8rem; }
progress { width: 12rem; vertical-align: middle; margin-right: 0.5rem; }
</style>
</head>
<body>
<h1>&#128204; Extrator de Saldo Diário de Extratos (PDF)</h1>
<p>Faça upload de um ou mais arquivos PDF (extratos razão) para extrair a data e o "Saldo do dia".</p>

{{if .Flash}}<div class="flash {{.FlashKind}}">{{.Flash}}</div>{{end}}

<form action="/process" method="post" enctype="multipart/form-data">
  <label for="files">Selecione os arquivos PDF</label><br>
  <input type="file" id="files" name="files" accept="application/pdf" multiple>
  <button type="submit">Processar Arquivos</button>
</form>

{{if .Report}}{{if not .Report.Empty}}
<h2>Resultados do Processamento</h2>
{{if gt .Processed 0}}
<p>
  <progress value="{{.Processed}}" max="{{.Processed}}"></progress>
  {{.Processed}} arquivo(s) processado(s), {{len .Report.Successes}} saldo(s) extraído(s).
</p>
{{end}}

{{with .Report.Successes}}
<h3>&#9989; Saldos diários encontrados:</h3>
<table>
  <thead><tr><th>Arquivo</th><th>Data</th><th>Saldo do Dia</th></tr></thead>
  <tbody>
{{range .}}  <tr><td>{{.File}}</td><td>{{.Date}}</td><td>{{.Balance}}</td></tr>
{{end}}  </tbody>
</table>
{{end}}

{{with .Report.Failures}}
<h3>&#9888; Arquivos onde o saldo não foi encontrado ou houve erro:</h3>
<table>
  <thead><tr><th>Arquivo</th><th>Saldo do Dia</th></tr></thead>
  <tbody>
{{range .}}  <tr><td>{{.File}}</td><td>{{.Balance}}</td></tr>
{{end}}  </tbody>
</table>
{{end}}

<p>
  <a href="/download/xlsx">Download da Planilha Excel</a> |
  <a href="/download/csv">Download CSV</a>
</p>
<p class="meta">Execução {{.Report.RunID}}, gerada em {{.Report.GeneratedAt.Format "02/01/2006 15:04:05"}}</p>
{{end}}{{end}}
</body>
</html>
`
