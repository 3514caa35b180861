package http

import (
	"context"
	"fmt"

	"github.com/danielgtaylor/huma/v2"
	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"

	"maqala/api/internal/article"
)

const apiVersion = "1.0.0"

type searchInput struct {
	Body struct {
		Query      string `json:"query" required:"true" minLength:"1" maxLength:"200" doc:"Topic to generate search results for"`
		Language   string `json:"language,omitempty" enum:"en,ar" default:"en" doc:"Content language"`
		MaxResults int    `json:"max_results,omitempty" minimum:"1" maximum:"10" default:"5" doc:"Number of results to generate"`
	}
}

type searchResponse struct {
	Body struct {
		Success    bool             `json:"success"`
		Message    string           `json:"message"`
		Results    []article.Record `json:"results"`
		TotalCount int              `json:"total_count"`
	}
}

type contentInput struct {
	Body struct {
		ArticleID      string `json:"article_id" required:"true" format:"uuid" doc:"Identifier of the article to expand"`
		Query          string `json:"query,omitempty" maxLength:"200" doc:"Original search topic, used to steer generation"`
		Language       string `json:"language,omitempty" enum:"en,ar" default:"en" doc:"Content language"`
		IncludeSummary *bool  `json:"include_summary,omitempty" doc:"Whether to include a summary, defaults to true"`
	}
}

type contentResponse struct {
	Body struct {
		Success bool             `json:"success"`
		Message string           `json:"message"`
		Content *article.Content `json:"content"`
	}
}

type departmentInput struct {
	Body struct {
		Department string `json:"department" required:"true" minLength:"1" maxLength:"100" doc:"Department name or code"`
		Language   string `json:"language,omitempty" enum:"en,ar" default:"en" doc:"Content language"`
	}
}

type departmentResponse struct {
	Body struct {
		Success    bool                `json:"success"`
		Message    string              `json:"message"`
		Department *article.Department `json:"department"`
	}
}

type healthResponse struct {
	Body struct {
		Status  string `json:"status"`
		Message string `json:"message"`
		Version string `json:"version"`
	}
}

func (s *Server) registerSearchRoute() {
	huma.Post(s.api, "/search", s.searchHandler, func(op *huma.Operation) {
		op.OperationID = "search-articles"
		op.Summary = "Generate article search results"
	})
}

func (s *Server) registerContentRoute() {
	huma.Post(s.api, "/content", s.contentHandler, func(op *huma.Operation) {
		op.OperationID = "article-content"
		op.Summary = "Generate full article content"
	})
}

func (s *Server) registerDepartmentRoute() {
	huma.Post(s.api, "/department", s.departmentHandler, func(op *huma.Operation) {
		op.OperationID = "department-info"
		op.Summary = "Generate department information"
	})
}

func (s *Server) registerHealthRoute() {
	huma.Get(s.api, "/health", s.healthHandler, func(op *huma.Operation) {
		op.OperationID = "health-check"
		op.Summary = "Health check"
	})
}

func (s *Server) searchHandler(ctx context.Context, input *searchInput) (*searchResponse, error) {
	records, err := s.articles.Search(ctx, input.Body.Query, input.Body.Language, input.Body.MaxResults)
	if err != nil {
		s.recordError(ctx, err, "search request rejected", logrus.Fields{"query": input.Body.Query})
		return nil, huma.Error422UnprocessableEntity("Invalid request parameters", err)
	}

	resp := &searchResponse{}
	resp.Body.Success = true
	resp.Body.Message = fmt.Sprintf("Generated %d articles", len(records))
	resp.Body.Results = records
	resp.Body.TotalCount = len(records)

	return resp, nil
}

func (s *Server) contentHandler(ctx context.Context, input *contentInput) (*contentResponse, error) {
	// A pointer keeps an explicit false distinct from an omitted field.
	includeSummary := true
	if input.Body.IncludeSummary != nil {
		includeSummary = *input.Body.IncludeSummary
	}

	content, err := s.articles.Content(ctx, input.Body.ArticleID, input.Body.Query, input.Body.Language, includeSummary)
	if err != nil {
		s.recordError(ctx, err, "content request rejected", logrus.Fields{"article_id": input.Body.ArticleID})
		return nil, huma.Error422UnprocessableEntity("Invalid request parameters", err)
	}

	resp := &contentResponse{}
	resp.Body.Success = true
	resp.Body.Message = "Content generated successfully"
	resp.Body.Content = content

	return resp, nil
}

func (s *Server) departmentHandler(ctx context.Context, input *departmentInput) (*departmentResponse, error) {
	department, err := s.articles.Department(ctx, input.Body.Department, input.Body.Language)
	if err != nil {
		s.recordError(ctx, err, "department request rejected", logrus.Fields{"department": input.Body.Department})
		return nil, huma.Error422UnprocessableEntity("Invalid request parameters", err)
	}

	resp := &departmentResponse{}
	resp.Body.Success = true
	resp.Body.Message = "Department information generated successfully"
	resp.Body.Department = department

	return resp, nil
}

func (s *Server) healthHandler(_ context.Context, _ *struct{}) (*healthResponse, error) {
	resp := &healthResponse{}
	resp.Body.Status = "healthy"
	resp.Body.Message = "Article Search API is running"
	resp.Body.Version = apiVersion

	return resp, nil
}

func (s *Server) recordError(ctx context.Context, err error, message string, fields logrus.Fields) {
	if err == nil {
		return
	}

	if s.logger != nil {
		entry := s.logger.WithField("error", err.Error())
		if fields != nil {
			entry = entry.WithFields(fields)
		}
		if requestID := RequestIDFromContext(ctx); requestID != "" {
			entry = entry.WithField("request_id", requestID)
		}
		entry.Error(message)
	}

	if hub := sentry.GetHubFromContext(ctx); hub != nil {
		hub.CaptureException(err)
		return
	}
	if s.sentry != nil {
		s.sentry.CaptureException(err)
	}
}
