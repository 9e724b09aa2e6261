// Package web serves the upload form and renders analysis reports in the
// browser. It is presentation glue over loader, analyzer, and report.
package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/denialscope-dev/denialscope/internal/analyzer"
	"github.com/denialscope-dev/denialscope/internal/config"
	"github.com/denialscope-dev/denialscope/internal/loader"
	"github.com/denialscope-dev/denialscope/internal/model"
	"github.com/denialscope-dev/denialscope/internal/report"
)

// Server is the upload-and-analyze web UI.
type Server struct {
	engine   *gin.Engine
	cfg      *config.Config
	registry *loader.Registry
}

// NewServer creates a Server with all routes registered.
func NewServer(cfg *config.Config) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.Default()
	engine.SetHTMLTemplate(templates())
	engine.MaxMultipartMemory = cfg.Server.MaxUploadMB << 20

	s := &Server{
		engine:   engine,
		cfg:      cfg,
		registry: loader.DefaultRegistry(),
	}
	engine.GET("/", s.handleIndex)
	engine.POST("/analyze", s.handleAnalyze)
	return s
}

// Handler exposes the underlying handler for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on the configured address until the process exits.
func (s *Server) Run() error {
	return s.engine.Run(s.cfg.Server.Addr)
}

func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index", indexData{})
}

func (s *Server) handleAnalyze(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		s.renderError(c, http.StatusBadRequest, "processing failed: no file uploaded")
		return
	}
	if fileHeader.Size > s.cfg.Server.MaxUploadMB<<20 {
		s.renderError(c, http.StatusRequestEntityTooLarge, "processing failed: file too large")
		return
	}

	reader := s.registry.ForPath(fileHeader.Filename)
	if reader == nil {
		s.renderError(c, http.StatusBadRequest,
			"processing failed: unsupported file type (use csv, xlsx, or xls)")
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		s.renderError(c, http.StatusBadRequest, report.UserMessage(err))
		return
	}
	defer src.Close()

	grid, err := reader.Read(src)
	if err != nil {
		s.renderError(c, http.StatusUnprocessableEntity, report.UserMessage(err))
		return
	}

	table, err := loader.Clean(grid)
	if err != nil {
		s.renderError(c, http.StatusUnprocessableEntity, report.UserMessage(err))
		return
	}

	analysis, err := analyzer.Aggregate(table)
	if err != nil {
		var mce analyzer.MissingColumnError
		status := http.StatusInternalServerError
		if errors.As(err, &mce) {
			status = http.StatusUnprocessableEntity
		}
		s.renderError(c, status, report.UserMessage(err), analysis.Warnings...)
		return
	}

	rep := report.Build(analysis)
	c.HTML(http.StatusOK, "report", newReportData(fileHeader.Filename, table, rep, s.cfg.Report.PreviewRows))
}

func (s *Server) renderError(c *gin.Context, status int, msg string, warnings ...string) {
	c.HTML(status, "index", indexData{Error: msg, Warnings: warnings})
}

// indexData feeds the upload page template.
type indexData struct {
	Error    string
	Warnings []string
}

// reportData feeds the report page template.
type reportData struct {
	Filename     string
	Columns      []string
	Preview      [][]string
	TotalRecords int
	DeniedCount  int
	NoDenials    bool
	Warnings     []string
	RankedCodes  []model.CodeCount
	CodeRates    []model.CodeRate
	Charts       []chartData
	RootCauses   string
	Fixes        string
}

// chartData is a ChartSpec with bar widths precomputed for the template.
type chartData struct {
	Title        string
	CategoryAxis string
	ValueAxis    string
	Rows         []chartRow
}

type chartRow struct {
	Name  string
	Count int
	Pct   int
}

func newReportData(filename string, t model.Table, rep model.Report, previewRows int) reportData {
	a := rep.Analysis

	var preview [][]string
	for i, rec := range t.Records {
		if i == previewRows {
			break
		}
		cells := make([]string, len(t.Columns))
		for j, name := range t.Columns {
			cells[j] = rec[name]
		}
		preview = append(preview, cells)
	}

	charts := make([]chartData, 0, len(rep.Charts))
	for _, spec := range rep.Charts {
		cd := chartData{
			Title:        spec.Title,
			CategoryAxis: spec.CategoryAxis,
			ValueAxis:    spec.ValueAxis,
		}
		top := 0
		for _, row := range spec.Rows {
			if row.Count > top {
				top = row.Count
			}
		}
		for _, row := range spec.Rows {
			pct := 0
			if top > 0 {
				pct = row.Count * 100 / top
			}
			cd.Rows = append(cd.Rows, chartRow{Name: row.Name, Count: row.Count, Pct: pct})
		}
		charts = append(charts, cd)
	}

	return reportData{
		Filename:     filename,
		Columns:      t.Columns,
		Preview:      preview,
		TotalRecords: a.TotalRecords,
		DeniedCount:  a.DeniedCount,
		NoDenials:    a.NoDenials(),
		Warnings:     a.Warnings,
		RankedCodes:  a.RankedCodes,
		CodeRates:    a.CodeRates,
		Charts:       charts,
		RootCauses:   rep.RootCauses,
		Fixes:        rep.Fixes,
	}
}
