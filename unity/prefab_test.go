package unity

import (
	"strings"
	"testing"
)

const prefabDoc = `%YAML 1.1
%TAG !u! tag:unity3d.com,2011:
--- !u!1 &100000
GameObject:
  m_Name: pCube1
--- !u!4 &400000
Transform:
  m_GameObject: {fileID: 100000}
  m_LocalRotation: {x: 0.7071068, y: 0, z: 0, w: 0.7071068}
  m_LocalPosition: {x: 1, y: 2, z: 3}
  m_LocalScale: {x: 2, y: 2, z: 2}
  m_LocalEulerAnglesHint: {x: 90, y: 0, z: 0}
  m_RootOrder: 0
--- !u!4 &400001
Transform:
  m_GameObject: {fileID: 100000}
  m_LocalRotation:
    x: 0.5
    y: 0.5
    z: 0.5
    w: 0.5
  m_LocalPosition: {x: 0, y: 0, z: 0}
  m_LocalScale: {x: 3, y: 3, z: 3}
  m_LocalEulerAnglesHint: {x: 0, y: 120, z: 0}
  m_RootOrder: 1
`

func TestParseDocuments(t *testing.T) {
	docs := ParseDocuments([]byte(prefabDoc))
	if len(docs) != 3 {
		t.Fatal("docs: ", len(docs))
	}
	if docs[0].Tag != "tag:unity3d.com,2011:1" || docs[0].refID != "100000" {
		t.Error("doc[0]: ", docs[0].Tag, docs[0].refID)
	}
	if docs[1].Tag != TransformTag || docs[1].refID != "400000" {
		t.Error("doc[1]: ", docs[1].Tag, docs[1].refID)
	}

	var m map[string]*Transform
	if err := docs[1].Decode(&m); err != nil {
		t.Fatal(err)
	}
	tr := m["Transform"]
	if tr == nil {
		t.Fatal("no Transform mapping")
	}
	if tr.LocalPosition != (Vector3{1, 2, 3}) || tr.LocalScale != (Vector3{2, 2, 2}) {
		t.Error("decoded: ", tr.LocalPosition, tr.LocalScale)
	}
	if tr.GameObject.FileID != 100000 {
		t.Error("ref: ", tr.GameObject)
	}
}

func TestResetTransforms(t *testing.T) {
	out, n := ResetTransforms([]byte(prefabDoc))
	// 3 inline values on the first transform, 1 block + 2 inline on the second
	if n != 6 {
		t.Error("reset count: ", n)
	}

	lines := strings.Split(string(out), "\n")
	for i, want := range map[int]string{
		8:  `  m_LocalRotation: {x: 0, y: 0, z: 0, w: 1}`,
		10: `  m_LocalScale: {x: 1, y: 1, z: 1}`,
		11: `  m_LocalEulerAnglesHint: {x: 0, y: 0, z: 0}`,
		17: `    x: 0`,
		18: `    y: 0`,
		19: `    z: 0`,
		20: `    w: 1`,
		22: `  m_LocalScale: {x: 1, y: 1, z: 1}`,
		23: `  m_LocalEulerAnglesHint: {x: 0, y: 0, z: 0}`,
	} {
		if lines[i] != want {
			t.Errorf("line %d:\n%q\n%q", i, want, lines[i])
		}
	}

	// everything else keeps its bytes
	orig := strings.Split(prefabDoc, "\n")
	if len(lines) != len(orig) {
		t.Fatal("line count changed")
	}
	touched := map[int]bool{8: true, 10: true, 11: true, 17: true, 18: true, 19: true, 20: true, 22: true, 23: true}
	for i := range orig {
		if !touched[i] && lines[i] != orig[i] {
			t.Errorf("line %d changed: %q", i, lines[i])
		}
	}

	if err := VerifyReset(out); err != nil {
		t.Error("verify after reset: ", err)
	}
	if err := VerifyReset([]byte(prefabDoc)); err == nil {
		t.Error("verify accepted non-identity transforms")
	}

	// already-reset input is a fixed point
	again, _ := ResetTransforms(out)
	if string(again) != string(out) {
		t.Error("reset is not idempotent")
	}
}

func TestResetTransformsCRLF(t *testing.T) {
	in := strings.ReplaceAll(prefabDoc, "\n", "\r\n")
	out, n := ResetTransforms([]byte(in))
	if n != 6 {
		t.Error("reset count: ", n)
	}
	lines := strings.Split(string(out), "\n")
	if lines[8] != "  m_LocalRotation: {x: 0, y: 0, z: 0, w: 1}\r" {
		t.Errorf("CR lost: %q", lines[8])
	}
}
