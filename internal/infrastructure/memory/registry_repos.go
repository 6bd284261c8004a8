package memory

import (
	"sort"

	"github.com/jhoicas/erp-pyme/internal/domain"
	"github.com/jhoicas/erp-pyme/internal/domain/entity"
)

type permissionRepo struct{ s *Store }

func (r *permissionRepo) Create(p *entity.Permission) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.permissions {
		if existing.Key == p.Key {
			return domain.ErrDuplicate
		}
	}
	r.s.permissions[p.ID] = clonePermission(p)
	return nil
}

func (r *permissionRepo) GetByID(id string) (*entity.Permission, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.permissions[id]
	if !ok {
		return nil, nil
	}
	out := clonePermission(p)
	out.RolesCount = r.rolesCountLocked(p.Key)
	return out, nil
}

func (r *permissionRepo) GetByKey(key string) (*entity.Permission, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.permissions {
		if p.Key == key {
			out := clonePermission(p)
			out.RolesCount = r.rolesCountLocked(key)
			return out, nil
		}
	}
	return nil, nil
}

func (r *permissionRepo) List() ([]*entity.Permission, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := make([]*entity.Permission, 0, len(r.s.permissions))
	for _, p := range r.s.permissions {
		out := clonePermission(p)
		out.RolesCount = r.rolesCountLocked(p.Key)
		list = append(list, out)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Key < list[j].Key })
	return list, nil
}

func (r *permissionRepo) Update(p *entity.Permission) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.permissions[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.permissions[p.ID] = clonePermission(p)
	return nil
}

func (r *permissionRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.permissions, id)
	return nil
}

func (r *permissionRepo) RolesCount(key string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.rolesCountLocked(key), nil
}

func (r *permissionRepo) rolesCountLocked(key string) int {
	n := 0
	for _, role := range r.s.roles {
		if role.HasPermission(key) {
			n++
		}
	}
	return n
}

type roleRepo struct{ s *Store }

func (r *roleRepo) Create(role *entity.Role) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.roles {
		if existing.Name == role.Name {
			return domain.ErrDuplicate
		}
	}
	r.s.roles[role.ID] = cloneRole(role)
	return nil
}

func (r *roleRepo) GetByID(id string) (*entity.Role, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	role, ok := r.s.roles[id]
	if !ok {
		return nil, nil
	}
	out := cloneRole(role)
	out.UsersCount = r.usersCountLocked(id)
	return out, nil
}

func (r *roleRepo) GetByName(name string) (*entity.Role, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, role := range r.s.roles {
		if role.Name == name {
			out := cloneRole(role)
			out.UsersCount = r.usersCountLocked(role.ID)
			return out, nil
		}
	}
	return nil, nil
}

func (r *roleRepo) List() ([]*entity.Role, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := make([]*entity.Role, 0, len(r.s.roles))
	for _, role := range r.s.roles {
		out := cloneRole(role)
		out.UsersCount = r.usersCountLocked(role.ID)
		list = append(list, out)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r *roleRepo) Update(role *entity.Role) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.roles[role.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.roles[role.ID] = cloneRole(role)
	return nil
}

func (r *roleRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.roles, id)
	return nil
}

func (r *roleRepo) UsersCount(roleID string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.usersCountLocked(roleID), nil
}

func (r *roleRepo) usersCountLocked(roleID string) int {
	n := 0
	for _, u := range r.s.users {
		if u.RoleID == roleID {
			n++
		}
	}
	return n
}

type userRepo struct{ s *Store }

func (r *userRepo) Create(user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.s.users[user.ID] = cloneUser(user)
	return nil
}

func (r *userRepo) GetByID(id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return cloneUser(u), nil
}

func (r *userRepo) GetByEmail(email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

func (r *userRepo) List(limit, offset int) ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := make([]*entity.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		list = append(list, cloneUser(u))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return paginate(list, limit, offset), nil
}

func (r *userRepo) Update(user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[user.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.users[user.ID] = cloneUser(user)
	return nil
}

func (r *userRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.users, id)
	return nil
}

func (r *userRepo) HasActivity(userID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, s := range r.s.sales {
		if s.SellerID == userID {
			return true, nil
		}
	}
	for _, q := range r.s.quotations {
		if q.SellerID == userID {
			return true, nil
		}
	}
	for _, p := range r.s.purchases {
		if p.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

type clientRepo struct{ s *Store }

func (r *clientRepo) Create(client *entity.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.clients[client.ID] = cloneClient(client)
	return nil
}

func (r *clientRepo) GetByID(id string) (*entity.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.clients[id]
	if !ok {
		return nil, nil
	}
	return cloneClient(c), nil
}

func (r *clientRepo) List(limit, offset int) ([]*entity.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := make([]*entity.Client, 0, len(r.s.clients))
	for _, c := range r.s.clients {
		list = append(list, cloneClient(c))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return paginate(list, limit, offset), nil
}

func (r *clientRepo) Update(client *entity.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.clients[client.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.clients[client.ID] = cloneClient(client)
	return nil
}

func (r *clientRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.clients, id)
	return nil
}

func (r *clientRepo) HasTransactions(clientID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, s := range r.s.sales {
		if s.ClientID == clientID {
			return true, nil
		}
	}
	for _, q := range r.s.quotations {
		if q.ClientID == clientID {
			return true, nil
		}
	}
	return false, nil
}

type supplierRepo struct{ s *Store }

func (r *supplierRepo) Create(supplier *entity.Supplier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.suppliers[supplier.ID] = cloneSupplier(supplier)
	return nil
}

func (r *supplierRepo) GetByID(id string) (*entity.Supplier, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	s, ok := r.s.suppliers[id]
	if !ok {
		return nil, nil
	}
	return cloneSupplier(s), nil
}

func (r *supplierRepo) List(limit, offset int) ([]*entity.Supplier, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := make([]*entity.Supplier, 0, len(r.s.suppliers))
	for _, s := range r.s.suppliers {
		list = append(list, cloneSupplier(s))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return paginate(list, limit, offset), nil
}

func (r *supplierRepo) Update(supplier *entity.Supplier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.suppliers[supplier.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.suppliers[supplier.ID] = cloneSupplier(supplier)
	return nil
}

func (r *supplierRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.suppliers, id)
	return nil
}

func (r *supplierRepo) HasTransactions(supplierID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.purchases {
		if p.SupplierID == supplierID {
			return true, nil
		}
	}
	return false, nil
}

func paginate[T any](list []*T, limit, offset int) []*T {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
