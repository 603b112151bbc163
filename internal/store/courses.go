package store

import "github.com/stylohub/stylohub-api/internal/domain/dashboard"

const forceCompleteXP = 250

// CompleteLesson marca a lição pelo trio curso/módulo/lição, recalcula
// o progresso do curso inteiro e premia o XP da lição exatamente uma
// vez. Lição já concluída (ou trio inexistente) é no-op.
func (s *Store) CompleteLesson(courseID, moduleID, lessonID string) {
	s.apply(func(prev *State) *State {
		var xpToAdd int
		touched := false

		courses := make([]dashboard.Course, len(prev.Courses))
		for ci, c := range prev.Courses {
			if c.ID != courseID {
				courses[ci] = c
				continue
			}

			modules := make([]dashboard.Module, len(c.Modules))
			for mi, m := range c.Modules {
				if m.ID != moduleID {
					modules[mi] = m
					continue
				}

				lessons := append([]dashboard.Lesson{}, m.Lessons...)
				for li := range lessons {
					if lessons[li].ID == lessonID && !lessons[li].IsCompleted {
						lessons[li].IsCompleted = true
						xpToAdd = lessons[li].XPReward
						touched = true
					}
				}

				m.Lessons = lessons
				modules[mi] = m
			}

			c.Modules = modules
			c.Progress = courseProgress(modules)
			courses[ci] = c
		}

		if !touched {
			return nil
		}

		next := *prev
		next.Courses = courses
		if xpToAdd > 0 {
			next.User = awardXP(prev.User, xpToAdd)
		}
		return &next
	})
}

// CompleteCourse força progresso 100 sem tocar nas lições.
//
// Deprecated: sobrevive por compatibilidade com o fluxo antigo do
// dashboard; o caminho atual é CompleteLesson.
func (s *Store) CompleteCourse(id string) {
	s.apply(func(prev *State) *State {
		courses := append([]dashboard.Course{}, prev.Courses...)
		for i := range courses {
			if courses[i].ID == id {
				courses[i].Progress = 100
			}
		}

		next := *prev
		next.Courses = courses
		next.User = awardXP(prev.User, forceCompleteXP)
		return &next
	})
}

// courseProgress deriva o progresso: round(100 * concluídas / total)
// sobre todas as lições do curso.
func courseProgress(modules []dashboard.Module) int {
	total, completed := 0, 0
	for _, m := range modules {
		for _, l := range m.Lessons {
			total++
			if l.IsCompleted {
				completed++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return int(float64(completed)/float64(total)*100 + 0.5)
}
