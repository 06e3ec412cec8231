package directors

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"cota/src/settings"
)

const testSaveText = `<save><collection name="User">` +
	`<record Id="000000000000000000000001">{"dc":"5c1f0d2a8e44c7b2312a9f01"}</record>` +
	`</collection><collection name="Character">` +
	`<record Id="5c1f0d2a8e44c7b2312a9f01">{"mainbp":"5c1f0d2a8e44c7b2312a9f02"}</record>` +
	`</collection><collection name="CharacterSheet">` +
	`<record Id="5c1f0d2a8e44c7b2312a9f01">{"ae":1500,"sk2":{"400":{"m":2,"t":111222333,"x":1500}}}</record>` +
	`</collection><collection name="ItemStore">` +
	`<record Id="5c1f0d2a8e44c7b2312a9f02">{"in":{}}</record>` +
	`</collection><collection name="UserGold">` +
	`<record Id="000000000000000000000001">{"g":1000}</record>` +
	`</collection></save>`

func newTestService(t *testing.T) *EditorService {
	t.Helper()
	editor, err := NewEditorService(settings.GetSettings(), zap.NewNop().Sugar())
	if err != nil {
		t.Fatal(err)
	}
	return editor
}

func openTestSave(t *testing.T, editor *EditorService) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.sav")
	if err := os.WriteFile(path, []byte(testSaveText), 0644); err != nil {
		t.Fatal(err)
	}
	if err := editor.Open(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFindSkill(t *testing.T) {
	editor := newTestService(t)

	skill, ok := editor.FindSkill("blade combat")
	if !ok {
		t.Fatalf("expected to find the skill")
	}
	if skill.ID != 400 || skill.Mul != 1 {
		t.Errorf("skill = %+v", skill)
	}

	if _, ok := editor.FindSkill("Basket Weaving"); ok {
		t.Errorf("expected no match")
	}
}

func TestSkillGroupsByCategory(t *testing.T) {
	editor := newTestService(t)

	if groups := editor.SkillGroups(0); len(groups) == 0 {
		t.Errorf("no adventurer groups")
	}
}

func TestEditorRequiresOpenDocument(t *testing.T) {
	editor := newTestService(t)

	if err := editor.SetAdventurerLevel(10); err == nil {
		t.Errorf("expected an error without an open document")
	}
	if err := editor.Save(""); err == nil {
		t.Errorf("expected an error without an open document")
	}
	if _, ok := editor.SkillLevel(editor.adventurer[0].Skills[0]); ok {
		t.Errorf("expected no level without an open document")
	}
}

func TestEditorValidatesRanges(t *testing.T) {
	editor := newTestService(t)
	openTestSave(t, editor)

	if err := editor.SetAdventurerLevel(0); err == nil {
		t.Errorf("expected a range error")
	}
	if err := editor.SetProducerLevel(201); err == nil {
		t.Errorf("expected a range error")
	}

	skill, _ := editor.FindSkill("Blade Combat")
	if err := editor.SetSkillLevel(skill, 201); err == nil {
		t.Errorf("expected a range error")
	}
	if err := editor.SetSkillLevel(skill, 0); err != nil {
		t.Errorf("level 0 removes the skill, got error %v", err)
	}
}

func TestEditorEditAndSave(t *testing.T) {
	editor := newTestService(t)
	path := openTestSave(t, editor)

	if err := editor.SetAdventurerLevel(10); err != nil {
		t.Fatal(err)
	}
	editor.Document().SetGold(2500)
	if err := editor.Save(""); err != nil {
		t.Fatal(err)
	}

	if err := editor.Open(path); err != nil {
		t.Fatal(err)
	}
	if gold, ok := editor.Document().Gold(); !ok || gold != 2500 {
		t.Errorf("Gold = %d, %v; want 2500", gold, ok)
	}
	if level, ok := editor.Document().AdventurerLevel(); !ok || level != 10 {
		t.Errorf("AdventurerLevel = %d, %v; want 10", level, ok)
	}
}

func TestServiceManagerSingleton(t *testing.T) {
	ResetServiceManager()
	t.Cleanup(ResetServiceManager)

	if mgr := GetServiceManager(); mgr.EditorService != nil {
		t.Errorf("expected an empty manager before initialization")
	}

	editor := newTestService(t)
	InitServiceManager(editor, zap.NewNop().Sugar())
	if mgr := GetServiceManager(); mgr.EditorService != editor {
		t.Errorf("manager does not hold the initialized service")
	}
}
