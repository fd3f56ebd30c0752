package category

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]Category, error) {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (Category, error) {
	return s.repo.GetByID(id)
}

func (s *Service) GetBySlug(slug string) (Category, error) {
	return s.repo.GetBySlug(slug)
}

func (s *Service) Create(cat Category) (Category, error) {
	return s.repo.Create(cat)
}
