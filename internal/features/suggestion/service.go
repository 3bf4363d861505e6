package suggestion

import (
	"context"

	"go-research/pkg/utils"
)

type SuggestionService interface {
	ListSuggestions(ctx context.Context, researchArea string) ([]Suggestion, error)
}

type SuggestionServiceImpl struct{}

func NewSuggestionService() SuggestionService {
	return &SuggestionServiceImpl{}
}

// Canned recommendations keyed by slugified research area. The empty key
// holds the generic set served when no area matches.
var mockSuggestions = map[string][]Suggestion{
	"": {
		{ID: "sug-001", Title: "Cross-departmental grant pairing", Summary: "Two open calls this quarter match your project keywords.", ResearchArea: "general", Score: 0.72},
		{ID: "sug-002", Title: "Add a data-management milestone", Summary: "Projects with an explicit data-management milestone close 18% faster.", ResearchArea: "general", Score: 0.64},
	},
	"computer-science": {
		{ID: "sug-101", Title: "Potential collaborator: HPC group", Summary: "The HPC lab has two researchers with overlapping publication topics.", ResearchArea: "computer_science", Score: 0.91},
		{ID: "sug-102", Title: "Horizon call: trustworthy AI", Summary: "Funding call closing in six weeks fits your project abstract.", ResearchArea: "computer_science", Score: 0.83},
	},
	"biology": {
		{ID: "sug-201", Title: "Shared sequencing budget", Summary: "Three active projects could pool sequencing costs this semester.", ResearchArea: "biology", Score: 0.88},
	},
	"medicine": {
		{ID: "sug-301", Title: "Ethics board pre-review", Summary: "Early pre-review slots are open for clinical study protocols.", ResearchArea: "medicine", Score: 0.79},
	},
}

func (s *SuggestionServiceImpl) ListSuggestions(ctx context.Context, researchArea string) ([]Suggestion, error) {
	if list, ok := mockSuggestions[utils.Slugify(researchArea)]; ok {
		return list, nil
	}
	return mockSuggestions[""], nil
}
