package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
)

// scrollSoft scrolls the page down in quarter-height steps so lazy-loaded
// price and spec sections get a chance to render.
func scrollSoft(steps int, pause time.Duration) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		for i := 0; i < steps; i++ {
			if err := chromedp.Evaluate(`window.scrollBy(0, document.body.scrollHeight/4);`, nil).Do(ctx); err != nil {
				return err
			}
			if err := chromedp.Sleep(pause).Do(ctx); err != nil {
				return err
			}
		}
		return nil
	})
}

// clickFirst clicks the first of the given CSS selectors that matches.
// A page without any match is not an error; most popups only show once.
func clickFirst(selectors ...string) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		sels, err := json.Marshal(selectors)
		if err != nil {
			return err
		}
		js := fmt.Sprintf(`(() => {
			for (const s of %s) {
				const el = document.querySelector(s);
				if (el) { el.click(); return s; }
			}
			return "";
		})()`, sels)

		var clicked string
		if err := chromedp.Evaluate(js, &clicked).Do(ctx); err != nil {
			return err
		}
		if clicked != "" {
			return chromedp.Sleep(800 * time.Millisecond).Do(ctx)
		}
		return nil
	})
}

// clickByText clicks the first button or link whose text contains one of
// the given fragments. Used for Turkish consent and spec-tab buttons that
// carry no stable id or class.
func clickByText(texts ...string) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		fragments, err := json.Marshal(texts)
		if err != nil {
			return err
		}
		js := fmt.Sprintf(`(() => {
			for (const t of %s) {
				const xp = '//button[contains(., "' + t + '")] | //a[contains(., "' + t + '")]';
				const r = document.evaluate(xp, document, null, XPathResult.FIRST_ORDERED_NODE_TYPE, null);
				if (r.singleNodeValue) { r.singleNodeValue.click(); return t; }
			}
			return "";
		})()`, fragments)

		var clicked string
		if err := chromedp.Evaluate(js, &clicked).Do(ctx); err != nil {
			return err
		}
		if clicked != "" {
			return chromedp.Sleep(800 * time.Millisecond).Do(ctx)
		}
		return nil
	})
}

// visibleSelectorScript builds the JS probe that reports which of the
// selectors is currently rendered and visible, or "" when none is.
func visibleSelectorScript(selectors []string) (string, error) {
	sels, err := json.Marshal(selectors)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`(() => {
		for (const s of %s) {
			const el = document.querySelector(s);
			if (!el) continue;
			const rect = el.getBoundingClientRect();
			const style = window.getComputedStyle(el);
			if (rect.width > 0 && rect.height > 0 && style.visibility !== 'hidden' && style.display !== 'none') {
				return s;
			}
		}
		return "";
	})()`, sels), nil
}
