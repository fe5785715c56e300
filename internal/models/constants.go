package models

// Placeholder values for report rows that carry no extracted balance.
// Downstream consumers match on these strings, so they never change.
const (
	SentinelDate      = "N/A"
	SentinelNotFound  = "Saldo não encontrado"
	SentinelReadError = "Erro ao ler PDF"
)

// Report column headers.
const (
	HeaderFile    = "Arquivo"
	HeaderDate    = "Data"
	HeaderBalance = "Saldo do Dia"
)

// Export settings.
const (
	SheetName    = "Saldos Extraídos"
	XLSXFileName = "relatorio_saldos_extraidos.xlsx"
	CSVFileName  = "relatorio_saldos_extraidos.csv"
	MIMEXLSX     = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	MIMECSV      = "text/csv; charset=utf-8"
)
