package repositories

import (
	"context"
	"sort"
	"sync"

	"github.com/proyectos-api/dto"
	"github.com/proyectos-api/models"
)

// MemoryStore is an index-based Store kept in process memory.
// Transactions run one at a time on a copy of the state that replaces the
// committed state only when the callback succeeds.
type MemoryStore struct {
	mu    sync.Mutex
	state *memoryState
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{state: newMemoryState()}
}

// Transaction runs fn against a private copy of the store
func (s *MemoryStore) Transaction(ctx context.Context, fn func(tx Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	working := s.state.clone()
	if err := fn(memoryTx{state: working}); err != nil {
		return err
	}

	s.state = working
	return nil
}

// Ping always succeeds
func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

type assignmentKey struct {
	employeeID uint
	projectID  uint
}

type memoryState struct {
	employees     map[uint]models.Employee
	projects      map[uint]models.Project
	projectByName map[string]uint
	assignments   map[assignmentKey]struct{}

	lastEmployeeID uint
	lastProjectID  uint
}

func newMemoryState() *memoryState {
	return &memoryState{
		employees:     make(map[uint]models.Employee),
		projects:      make(map[uint]models.Project),
		projectByName: make(map[string]uint),
		assignments:   make(map[assignmentKey]struct{}),
	}
}

func (s *memoryState) clone() *memoryState {
	c := &memoryState{
		employees:      make(map[uint]models.Employee, len(s.employees)),
		projects:       make(map[uint]models.Project, len(s.projects)),
		projectByName:  make(map[string]uint, len(s.projectByName)),
		assignments:    make(map[assignmentKey]struct{}, len(s.assignments)),
		lastEmployeeID: s.lastEmployeeID,
		lastProjectID:  s.lastProjectID,
	}
	for id, e := range s.employees {
		c.employees[id] = e
	}
	for id, p := range s.projects {
		c.projects[id] = p
	}
	for name, id := range s.projectByName {
		c.projectByName[name] = id
	}
	for key := range s.assignments {
		c.assignments[key] = struct{}{}
	}
	return c
}

type memoryTx struct {
	state *memoryState
}

func (t memoryTx) Employees() EmployeeRepository {
	return memoryEmployees{state: t.state}
}

func (t memoryTx) Projects() ProjectRepository {
	return memoryProjects{state: t.state}
}

func (t memoryTx) Assignments() AssignmentRepository {
	return memoryAssignments{state: t.state}
}

type memoryEmployees struct {
	state *memoryState
}

func (r memoryEmployees) Create(employee models.Employee) (models.Employee, error) {
	r.state.lastEmployeeID++
	employee.ID = r.state.lastEmployeeID
	r.state.employees[employee.ID] = employee
	return employee, nil
}

func (r memoryEmployees) FindByID(id uint) (models.Employee, error) {
	employee, ok := r.state.employees[id]
	if !ok {
		return models.Employee{}, ErrNotFound
	}
	return employee, nil
}

func (r memoryEmployees) FindAll(filter dto.EmployeeFilter) ([]models.Employee, error) {
	employees := make([]models.Employee, 0)
	for _, e := range r.state.employees {
		if filter.Matches(e) {
			employees = append(employees, e)
		}
	}
	sortEmployees(employees)
	return employees, nil
}

func (r memoryEmployees) Update(employee models.Employee) error {
	if _, ok := r.state.employees[employee.ID]; !ok {
		return ErrNotFound
	}
	r.state.employees[employee.ID] = employee
	return nil
}

// Delete cascades to assignments and is restricted while the employee manages a project
func (r memoryEmployees) Delete(id uint) error {
	if _, ok := r.state.employees[id]; !ok {
		return ErrNotFound
	}
	for _, p := range r.state.projects {
		if p.ManagerID == id {
			return ErrForeignKey
		}
	}
	for key := range r.state.assignments {
		if key.employeeID == id {
			delete(r.state.assignments, key)
		}
	}
	delete(r.state.employees, id)
	return nil
}

type memoryProjects struct {
	state *memoryState
}

func (r memoryProjects) Create(project models.Project) (models.Project, error) {
	if _, taken := r.state.projectByName[project.Name]; taken {
		return models.Project{}, ErrDuplicateKey
	}
	if _, ok := r.state.employees[project.ManagerID]; !ok {
		return models.Project{}, ErrForeignKey
	}

	r.state.lastProjectID++
	project.ID = r.state.lastProjectID
	project.Manager = models.Employee{}
	r.state.projects[project.ID] = project
	r.state.projectByName[project.Name] = project.ID
	return project, nil
}

func (r memoryProjects) FindByID(id uint) (models.Project, error) {
	project, ok := r.state.projects[id]
	if !ok {
		return models.Project{}, ErrNotFound
	}
	return project, nil
}

func (r memoryProjects) FindAll(filter dto.ProjectFilter) ([]models.Project, error) {
	projects := make([]models.Project, 0)
	for _, p := range r.state.projects {
		if filter.Matches(p) {
			projects = append(projects, p)
		}
	}
	sortProjects(projects)
	return projects, nil
}

func (r memoryProjects) FindByManagerID(managerID uint) ([]models.Project, error) {
	projects := make([]models.Project, 0)
	for _, p := range r.state.projects {
		if p.ManagerID == managerID {
			projects = append(projects, p)
		}
	}
	sortProjects(projects)
	return projects, nil
}

func (r memoryProjects) ExistsByName(name string) (bool, error) {
	_, ok := r.state.projectByName[name]
	return ok, nil
}

func (r memoryProjects) Update(project models.Project) error {
	current, ok := r.state.projects[project.ID]
	if !ok {
		return ErrNotFound
	}
	if owner, taken := r.state.projectByName[project.Name]; taken && owner != project.ID {
		return ErrDuplicateKey
	}
	if _, ok := r.state.employees[project.ManagerID]; !ok {
		return ErrForeignKey
	}

	delete(r.state.projectByName, current.Name)
	project.Manager = models.Employee{}
	r.state.projects[project.ID] = project
	r.state.projectByName[project.Name] = project.ID
	return nil
}

// Delete cascades to assignments
func (r memoryProjects) Delete(id uint) error {
	project, ok := r.state.projects[id]
	if !ok {
		return ErrNotFound
	}
	for key := range r.state.assignments {
		if key.projectID == id {
			delete(r.state.assignments, key)
		}
	}
	delete(r.state.projectByName, project.Name)
	delete(r.state.projects, id)
	return nil
}

type memoryAssignments struct {
	state *memoryState
}

func (r memoryAssignments) Exists(projectID, employeeID uint) (bool, error) {
	_, ok := r.state.assignments[assignmentKey{employeeID: employeeID, projectID: projectID}]
	return ok, nil
}

func (r memoryAssignments) Create(assignment models.Assignment) error {
	key := assignmentKey{employeeID: assignment.EmployeeID, projectID: assignment.ProjectID}
	if _, ok := r.state.assignments[key]; ok {
		return ErrDuplicateKey
	}
	if _, ok := r.state.employees[key.employeeID]; !ok {
		return ErrForeignKey
	}
	if _, ok := r.state.projects[key.projectID]; !ok {
		return ErrForeignKey
	}
	r.state.assignments[key] = struct{}{}
	return nil
}

func (r memoryAssignments) Delete(projectID, employeeID uint) error {
	key := assignmentKey{employeeID: employeeID, projectID: projectID}
	if _, ok := r.state.assignments[key]; !ok {
		return ErrNotFound
	}
	delete(r.state.assignments, key)
	return nil
}

func (r memoryAssignments) DeleteByProjectID(projectID uint) error {
	for key := range r.state.assignments {
		if key.projectID == projectID {
			delete(r.state.assignments, key)
		}
	}
	return nil
}

func (r memoryAssignments) DeleteByEmployeeID(employeeID uint) error {
	for key := range r.state.assignments {
		if key.employeeID == employeeID {
			delete(r.state.assignments, key)
		}
	}
	return nil
}

func (r memoryAssignments) FindEmployeesByProjectID(projectID uint) ([]models.Employee, error) {
	employees := make([]models.Employee, 0)
	for key := range r.state.assignments {
		if key.projectID != projectID {
			continue
		}
		if e, ok := r.state.employees[key.employeeID]; ok {
			employees = append(employees, e)
		}
	}
	sortEmployees(employees)
	return employees, nil
}

func (r memoryAssignments) FindProjectsByEmployeeID(employeeID uint) ([]models.Project, error) {
	projects := make([]models.Project, 0)
	for key := range r.state.assignments {
		if key.employeeID != employeeID {
			continue
		}
		if p, ok := r.state.projects[key.projectID]; ok {
			projects = append(projects, p)
		}
	}
	sortProjects(projects)
	return projects, nil
}

func sortEmployees(employees []models.Employee) {
	sort.Slice(employees, func(i, j int) bool { return employees[i].ID < employees[j].ID })
}

func sortProjects(projects []models.Project) {
	sort.Slice(projects, func(i, j int) bool { return projects[i].ID < projects[j].ID })
}
