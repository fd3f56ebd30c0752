package blog

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]Blog, error) {
	return s.repo.List()
}

func (s *Service) Latest(limit int) ([]Blog, error) {
	return s.repo.Latest(limit)
}

func (s *Service) GetByID(id int) (Blog, error) {
	return s.repo.GetByID(id)
}

func (s *Service) GetBySlug(slug string) (Blog, error) {
	return s.repo.GetBySlug(slug)
}

func (s *Service) Create(b Blog) (Blog, error) {
	return s.repo.Create(b)
}
