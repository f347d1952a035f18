package mock

import "github.com/contentgap/contentgap"

var _ contentgap.TopicModeler = (*TopicModeler)(nil)

// TopicModeler is a mock implementation of contentgap.TopicModeler.
type TopicModeler struct {
	TopTermsFn func(segments [][]string, topics, topn int) ([]string, error)
}

func (m *TopicModeler) TopTerms(segments [][]string, topics, topn int) ([]string, error) {
	return m.TopTermsFn(segments, topics, topn)
}
