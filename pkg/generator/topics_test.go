package generator

import (
	"reflect"
	"testing"

	"yolcu-backend/internal/entity"
)

func sampleDoc() *entity.RoadmapDocument {
	return &entity.RoadmapDocument{
		DiagramTitle: "Backend Geliştirme",
		MainStages: []entity.Stage{
			{
				StageName: "Temeller",
				SubNodes: []entity.SubNode{
					{
						CentralNodeTitle: "Programlama",
						LeftItems: []entity.TopicItem{
							{Id: "l1", Name: "Go"},
							{Id: "l2", Name: "Veri Yapıları"},
						},
						RightItems: []entity.TopicItem{
							{Id: "r1", Name: "Algoritmalar"},
						},
					},
				},
			},
			{
				StageName: "İleri Seviye",
				SubNodes: []entity.SubNode{
					{
						CentralNodeTitle: "Dağıtık Sistemler",
						LeftItems: []entity.TopicItem{
							{Id: "l3", Name: "Go"}, // duplicate on purpose
						},
						RightItems: []entity.TopicItem{
							{Id: "r2", Name: "Mesaj Kuyrukları"},
						},
					},
				},
			},
		},
	}
}

func TestExtractTopicsOrderAndDedup(t *testing.T) {
	got := ExtractTopics(sampleDoc())
	want := []string{
		"Backend Geliştirme",
		"Temeller",
		"Programlama",
		"Go",
		"Veri Yapıları",
		"Algoritmalar",
		"İleri Seviye",
		"Dağıtık Sistemler",
		"Mesaj Kuyrukları",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractTopics = %v, want %v", got, want)
	}
}

func TestExtractTopicsNilDoc(t *testing.T) {
	if got := ExtractTopics(nil); got != nil {
		t.Errorf("ExtractTopics(nil) = %v, want nil", got)
	}
}

func TestFindItem(t *testing.T) {
	doc := sampleDoc()

	name, center, ok := FindItem(doc, "r2")
	if !ok || name != "Mesaj Kuyrukları" || center != "Dağıtık Sistemler" {
		t.Errorf("FindItem(r2) = (%q, %q, %v)", name, center, ok)
	}

	if _, _, ok := FindItem(doc, "missing"); ok {
		t.Error("FindItem(missing) should not be found")
	}
}
