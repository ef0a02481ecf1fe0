package sentiment

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spacesedan/surveyflow/internal/models"
	"github.com/spacesedan/surveyflow/internal/utils"
)

// SentimentService is the slice of the remote client the scorer needs.
type SentimentService interface {
	GetBatchedSentimentAnalysis(ctx context.Context, input models.SentimentAnalysisBatchRequest) (models.SentimentAnalysisBatchResponse, error)
}

// Remote scores text through the hosted sentiment analysis service, sending
// requests in batches of BatchSize.
type Remote struct {
	Service   SentimentService
	BatchSize int
}

func NewRemote(service SentimentService) *Remote {
	return &Remote{Service: service, BatchSize: utils.DEFAULT_BATCH_SIZE}
}

func (r *Remote) Polarity(ctx context.Context, text string) (float64, error) {
	scores, err := r.PolarityBatch(ctx, []string{text})
	if err != nil {
		return 0, err
	}
	return scores[0], nil
}

func (r *Remote) PolarityBatch(ctx context.Context, texts []string) ([]float64, error) {
	scores := make([]float64, len(texts))
	index := make(map[string]int, len(texts))
	buffer := utils.NewBatchBuffer[models.SentimentAnalysisRequest](r.BatchSize)

	for i, text := range texts {
		id := strconv.Itoa(i)
		index[id] = i
		if buffer.Add(models.SentimentAnalysisRequest{ContentID: id, Text: text}) {
			if err := r.sendBatch(ctx, buffer.GetAndClear(), index, scores); err != nil {
				return nil, err
			}
		}
	}
	if buffer.HasData() {
		if err := r.sendBatch(ctx, buffer.GetAndClear(), index, scores); err != nil {
			return nil, err
		}
	}
	return scores, nil
}

// sendBatch writes each result into scores at the position index holds for
// its content ID.
func (r *Remote) sendBatch(ctx context.Context, batch []models.SentimentAnalysisRequest, index map[string]int, scores []float64) error {
	resp, err := r.Service.GetBatchedSentimentAnalysis(ctx, models.SentimentAnalysisBatchRequest{Posts: batch})
	if err != nil {
		return fmt.Errorf("remote sentiment analysis: %w", err)
	}

	byID := mapSentimentScoreToContentID(resp)
	for _, req := range batch {
		score, ok := byID[req.ContentID]
		if !ok {
			slog.Warn("[RemoteScorer] No sentiment results for content ID",
				slog.String("content_id", req.ContentID))
			return fmt.Errorf("remote sentiment analysis: no result for record %s", req.ContentID)
		}
		scores[index[req.ContentID]] = score.SentimentScore
	}
	return nil
}

// mapSentimentScoreToContentID Creates a map to sentiment scores to avoid nested loops
func mapSentimentScoreToContentID(scores models.SentimentAnalysisBatchResponse) map[string]models.SentimentAnalysisResponse {
	scoreMap := make(map[string]models.SentimentAnalysisResponse, len(scores))

	for _, score := range scores {
		scoreMap[score.ContentID] = score
	}

	return scoreMap
}
