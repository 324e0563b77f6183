package listing

import (
	"context"
	"testing"
	"time"

	"github.com/osse101/BabyBank_Go/internal/catalog"
	"github.com/osse101/BabyBank_Go/internal/domain"
)

// stubSubmitter accepts every draft without allocating beyond the listing itself
type stubSubmitter struct{}

func (stubSubmitter) Submit(ctx context.Context, draft domain.ListingDraft) (*domain.Listing, error) {
	return domain.NewListingFromDraft("bench", draft, time.Time{}), nil
}

func fillBenchDraft(b *testing.B, svc Service, id string) {
	ctx := context.Background()
	if err := svc.SetField(ctx, id, domain.FieldTitle, "Baby monitor"); err != nil {
		b.Fatalf("SetField failed: %v", err)
	}
	if err := svc.SetField(ctx, id, domain.FieldDescription, "Audio and video, two cameras"); err != nil {
		b.Fatalf("SetField failed: %v", err)
	}
	if err := svc.SetCategory(ctx, id, domain.CategorySafety); err != nil {
		b.Fatalf("SetCategory failed: %v", err)
	}
	if err := svc.SetCondition(ctx, id, domain.ConditionLikeNew); err != nil {
		b.Fatalf("SetCondition failed: %v", err)
	}
}

// BenchmarkService_FillAndSubmit measures one full posting flow against a stub backend
func BenchmarkService_FillAndSubmit(b *testing.B) {
	svc := NewService(Config{SessionLimit: 1024}, catalog.NewPolicy(catalog.Default(), true), stubSubmitter{}, nil, nil, nil)
	ctx := context.Background()
	id, _, err := svc.OpenDraft(ctx, "")
	if err != nil {
		b.Fatalf("OpenDraft failed: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		fillBenchDraft(b, svc, id)
		if _, err := svc.Submit(ctx, id); err != nil {
			b.Fatalf("Submit failed: %v", err)
		}
	}
}

// BenchmarkForm_StateParallel measures snapshot contention on a single draft
func BenchmarkForm_StateParallel(b *testing.B) {
	f := NewForm(catalog.NewPolicy(catalog.Default(), true), stubSubmitter{})
	_ = f.SetField(domain.FieldTitle, "Bouncer")
	f.AddImage("a.jpg")
	f.AddImage("b.jpg")

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = f.State()
		}
	})
}
