package service_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/model"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/service"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/store"
)

var _ = Describe("CompanyService", func() {
	var (
		svc       service.CompanyService
		companies *mockCompanyStore
		batches   *mockBatchStore
		users     *mockUserStore
		c         *recordingCache
		ctx       context.Context

		company *model.Company
		saved   *model.Company
		w26     int64
		s26     int64
	)

	BeforeEach(func() {
		ctx = context.Background()
		w26, s26 = 26, 27
		company = &model.Company{ID: 500, Name: "Acme", Slug: "acme", BatchID: &w26}
		saved = nil

		companies = &mockCompanyStore{
			getByIDFn: func(_ context.Context, id int64) (*model.Company, error) {
				if id != company.ID {
					return nil, store.ErrNotFound
				}
				cp := *company
				return &cp, nil
			},
			updateFn: func(_ context.Context, updated *model.Company) error {
				cp := *updated
				saved = &cp
				return nil
			},
		}
		batches = &mockBatchStore{
			getByIDFn: func(_ context.Context, id int64) (*model.Batch, error) {
				if id == w26 || id == s26 {
					return &model.Batch{ID: id}, nil
				}
				return nil, store.ErrNotFound
			},
		}
		users = &mockUserStore{}
		c = &recordingCache{}
		svc = service.NewCompanyService(companies, batches, users, c)
	})

	Describe("Create", func() {
		It("suffixes the slug when it is taken", func() {
			companies.getBySlugFn = func(_ context.Context, slug string) (*model.Company, error) {
				if slug == "acme" || slug == "acme-1" {
					return &model.Company{}, nil
				}
				return nil, store.ErrNotFound
			}
			var stored *model.Company
			companies.createFn = func(_ context.Context, created *model.Company) error {
				stored = created
				return nil
			}

			created, err := svc.Create(ctx, model.CompanyInput{Name: " Acme ", BatchID: &w26})

			Expect(err).NotTo(HaveOccurred())
			Expect(created.Name).To(Equal("Acme"))
			Expect(created.Slug).To(Equal("acme-2"))
			Expect(stored).To(BeIdenticalTo(created))
		})

		It("requires a name and an existing batch", func() {
			_, err := svc.Create(ctx, model.CompanyInput{Name: "  "})
			Expect(err).To(MatchError(service.ErrInvalidInput))

			missing := int64(404)
			_, err = svc.Create(ctx, model.CompanyInput{Name: "Acme", BatchID: &missing})
			Expect(err).To(MatchError(service.ErrBatchNotFound))
		})
	})

	Describe("Update", func() {
		It("lets a founder edit their own company but not move it between batches", func() {
			founder := &model.User{ID: 3, Role: model.RoleFounder, CompanyID: &company.ID}
			oneLiner := "Payroll for robots"

			updated, err := svc.Update(ctx, founder, company.ID, model.CompanyInput{Name: "Acme Inc", OneLiner: &oneLiner, BatchID: &s26})

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Name).To(Equal("Acme Inc"))
			Expect(*updated.OneLiner).To(Equal("Payroll for robots"))
			Expect(*saved.BatchID).To(Equal(w26))
			Expect(c.tags()).To(ConsistOf(service.TagDirectory))
		})

		It("forbids founders of another company and other roles", func() {
			otherCompany := int64(501)
			outsider := &model.User{ID: 4, Role: model.RoleFounder, CompanyID: &otherCompany}
			_, err := svc.Update(ctx, outsider, company.ID, model.CompanyInput{Name: "Hijacked"})
			Expect(err).To(MatchError(service.ErrForbidden))

			mentor := &model.User{ID: 5, Role: model.RoleMentor, CompanyID: &company.ID}
			_, err = svc.Update(ctx, mentor, company.ID, model.CompanyInput{Name: "Hijacked"})
			Expect(err).To(MatchError(service.ErrForbidden))

			noCompany := &model.User{ID: 6, Role: model.RoleFounder}
			_, err = svc.Update(ctx, noCompany, company.ID, model.CompanyInput{Name: "Hijacked"})
			Expect(err).To(MatchError(service.ErrForbidden))

			Expect(saved).To(BeNil())
			Expect(c.tags()).To(BeEmpty())
		})

		It("lets an admin move the company to another batch", func() {
			admin := &model.User{ID: 1, Role: model.RoleAdmin}

			_, err := svc.Update(ctx, admin, company.ID, model.CompanyInput{Name: "Acme", BatchID: &s26})

			Expect(err).NotTo(HaveOccurred())
			Expect(*saved.BatchID).To(Equal(s26))
		})

		It("returns ErrCompanyNotFound for unknown companies", func() {
			admin := &model.User{ID: 1, Role: model.RoleAdmin}
			_, err := svc.Update(ctx, admin, 999, model.CompanyInput{Name: "Ghost"})
			Expect(err).To(MatchError(service.ErrCompanyNotFound))
		})
	})

	Describe("Delete", func() {
		It("deletes and invalidates the directory", func() {
			var deleted int64
			companies.deleteFn = func(_ context.Context, id int64) error {
				deleted = id
				return nil
			}

			Expect(svc.Delete(ctx, company.ID)).To(Succeed())
			Expect(deleted).To(Equal(company.ID))
			Expect(c.tags()).To(ConsistOf(service.TagDirectory))
		})

		It("returns ErrCompanyNotFound for unknown companies", func() {
			Expect(svc.Delete(ctx, 999)).To(MatchError(service.ErrCompanyNotFound))
		})
	})

	It("gets a company with its founders", func() {
		users.listByCompanyFn = func(_ context.Context, companyID int64) ([]model.User, error) {
			Expect(companyID).To(Equal(company.ID))
			return []model.User{{ID: 3, Name: "Founder"}}, nil
		}

		found, err := svc.Get(ctx, company.ID)

		Expect(err).NotTo(HaveOccurred())
		Expect(found.Founders).To(HaveLen(1))
	})
})
