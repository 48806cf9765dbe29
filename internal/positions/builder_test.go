package positions

import (
	"reflect"
	"testing"
)

func TestBuildRejectsNonMapping(t *testing.T) {
	if _, ok := Build("not an object"); ok {
		t.Fatal("expected rejection of non-mapping record")
	}
	if _, ok := Build(nil); ok {
		t.Fatal("expected rejection of nil record")
	}
}

func TestBuildRejectsCoinObjects(t *testing.T) {
	obj := decodeJSON(t, `{
		"objectId": "0x1",
		"type": "0x2::coin::Coin<0x2::sui::SUI>",
		"content": {"fields": {"balance": "1000"}}
	}`)
	if _, ok := Build(obj); ok {
		t.Fatal("expected coin object to be rejected")
	}
}

func TestBuildRejectsUnknownProtocol(t *testing.T) {
	obj := decodeJSON(t, `{"objectId": "0x1", "type": "0xdead::amm::Pool"}`)
	if _, ok := Build(obj); ok {
		t.Fatal("expected unrecognized type to be rejected")
	}
}

func TestBuildTypeFallsBackToContent(t *testing.T) {
	obj := decodeJSON(t, `{
		"objectId": "0x9",
		"content": {"type": "0xdead::suilend::Obligation", "fields": {"supplied": "500"}}
	}`)
	position, ok := Build(obj)
	if !ok {
		t.Fatal("expected position from content.type")
	}
	if position.Protocol != "Suilend" || position.ObjectID != "0x9" {
		t.Fatalf("unexpected position: %+v", position)
	}
}

func TestBuildObjectIDFallbackChain(t *testing.T) {
	fromReference := decodeJSON(t, `{
		"type": "0xdead::cetus::Position",
		"reference": {"objectId": "0xref"}
	}`)
	position, ok := Build(fromReference)
	if !ok || position.ObjectID != "0xref" {
		t.Fatalf("expected reference.objectId, got %+v", position)
	}

	fromFieldsID := decodeJSON(t, `{
		"type": "0xdead::cetus::Position",
		"content": {"fields": {"id": {"id": "0xfid"}}}
	}`)
	position, ok = Build(fromFieldsID)
	if !ok || position.ObjectID != "0xfid" {
		t.Fatalf("expected rendered content.fields.id, got %+v", position)
	}

	withoutID := decodeJSON(t, `{"type": "0xdead::cetus::Position"}`)
	position, ok = Build(withoutID)
	if !ok {
		t.Fatal("missing id must not reject the record")
	}
	if position.ObjectID != "" {
		t.Fatalf("expected empty object id, got %q", position.ObjectID)
	}
}

func TestBuildDisplayNameOverridesDerivedLabel(t *testing.T) {
	obj := decodeJSON(t, `{
		"objectId": "0x1",
		"type": "0xdead::cetus::Position",
		"display": {"data": {"name": "My LP", "apr": "8%"}},
		"content": {"fields": {"coin_a": "0x1::usdc::USDC", "coin_b": "0x2::sui::SUI"}}
	}`)
	position, ok := Build(obj)
	if !ok {
		t.Fatal("expected position")
	}
	if position.Label != "My LP" {
		t.Fatalf("display name must win, got %q", position.Label)
	}
	if len(position.Metrics) == 0 || position.Metrics[0].Label != "Apr" {
		t.Fatalf("expected display metric first, got %+v", position.Metrics)
	}
}

func TestBuildIsIdempotent(t *testing.T) {
	obj := decodeJSON(t, `{
		"objectId": "0x1",
		"type": "0xdead::cetus::Position",
		"content": {"fields": {"coin_a": "USDC", "coin_b": "SUI", "liquidity": 1000}}
	}`)
	first, ok1 := Build(obj)
	second, ok2 := Build(obj)
	if !ok1 || !ok2 || !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical output on repeat builds: %+v vs %+v", first, second)
	}
}

func TestBuildMalformedSubstructuresDegrade(t *testing.T) {
	obj := decodeJSON(t, `{
		"objectId": 42,
		"type": "0xdead::navi::Account",
		"display": "not a mapping",
		"content": {"fields": "also not a mapping"}
	}`)
	position, ok := Build(obj)
	if !ok {
		t.Fatal("malformed substructures must degrade, not reject")
	}
	if position.ObjectID != "" {
		t.Fatalf("non-string objectId must be left absent, got %q", position.ObjectID)
	}
	if position.Label != "Navi Protocol position" {
		t.Fatalf("unexpected label: %q", position.Label)
	}
	if len(position.Metrics) != 0 {
		t.Fatalf("expected no metrics, got %+v", position.Metrics)
	}
}
