package generator

import (
	"yolcu-backend/internal/entity"
)

// ExtractTopics flattens a roadmap document into its topic strings: diagram
// title, stage names, central node titles, then item names (left before
// right), in document order. Duplicates collapse to the first occurrence so
// the index order is stable; the chat matcher's tie-break and the prompts
// built from this list rely on that determinism.
func ExtractTopics(doc *entity.RoadmapDocument) []string {
	if doc == nil {
		return nil
	}

	var topics []string
	seen := make(map[string]struct{})
	add := func(name string) {
		if name == "" {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		topics = append(topics, name)
	}

	add(doc.DiagramTitle)
	for _, stage := range doc.MainStages {
		add(stage.StageName)
		for _, node := range stage.SubNodes {
			add(node.CentralNodeTitle)
			for _, item := range node.LeftItems {
				add(item.Name)
			}
			for _, item := range node.RightItems {
				add(item.Name)
			}
		}
	}
	return topics
}

// FindItem locates a topic item by id and returns its name together with the
// central node title it hangs under. Item ids are unique document-wide.
func FindItem(doc *entity.RoadmapDocument, itemID string) (name, centralNodeTitle string, ok bool) {
	if doc == nil {
		return "", "", false
	}
	for _, stage := range doc.MainStages {
		for _, node := range stage.SubNodes {
			for _, item := range node.LeftItems {
				if item.Id == itemID {
					return item.Name, node.CentralNodeTitle, true
				}
			}
			for _, item := range node.RightItems {
				if item.Id == itemID {
					return item.Name, node.CentralNodeTitle, true
				}
			}
		}
	}
	return "", "", false
}
