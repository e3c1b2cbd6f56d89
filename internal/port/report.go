package port

import "docstyle/internal/domain"

// ReportSink renders computed results. Rounding and layout belong to the sink.
type ReportSink interface {
	WriteDocument(stats domain.DocumentStats) error
	WriteAnalysis(analysis domain.Analysis) error
	WriteMatrix(matrix domain.MatrixReport) error
}
